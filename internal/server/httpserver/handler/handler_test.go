// Package handler provides HTTP request handlers for SolGate.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/solgate/solgate-go/internal/core/service"
	"github.com/solgate/solgate-go/internal/telemetry/metric"
)

const (
	tokenProgramID  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	systemProgramID = "11111111111111111111111111111111"
)

func testHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(service.NewWalletService(), service.NewInstructionService(), metric.NewRegistry(), logger)
}

// newPubkey returns a fresh random base58 public key.
func newPubkey(t *testing.T) string {
	t.Helper()
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return priv.PublicKey().String()
}

func doPost(t *testing.T, h *Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return &resp
}

func successData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Fatalf("expected success envelope, got error: %s", resp.Error)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}
	return data
}

func expectFailure(t *testing.T, rec *httptest.ResponseRecorder, wantCode string) *Response {
	t.Helper()
	if rec.Code < 400 || rec.Code >= 500 {
		t.Fatalf("expected 4xx status, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Success {
		t.Fatal("expected failure envelope, got success")
	}
	if resp.Error == "" {
		t.Error("expected non-empty error message")
	}
	if resp.Data != nil {
		t.Error("failure envelope must not carry data")
	}
	if got := rec.Header().Get("X-Error-Code"); got != wantCode {
		t.Errorf("X-Error-Code = %q, want %q", got, wantCode)
	}
	return resp
}

func TestHandler_Health(t *testing.T) {
	h := testHandler()

	t.Run("GET /ping returns pong", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		data := successData(t, rec)
		if data["message"] != "pong" {
			t.Errorf("expected message 'pong', got '%v'", data["message"])
		}
	})

	t.Run("GET /health returns healthy status", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		data := successData(t, rec)
		if data["status"] != "healthy" {
			t.Errorf("expected status 'healthy', got '%v'", data["status"])
		}
	})

	t.Run("GET /ready returns ready status", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ready", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestHandler_GenerateKeypair(t *testing.T) {
	h := testHandler()

	t.Run("returns a well-formed keypair", func(t *testing.T) {
		rec := doPost(t, h, "/keypair", "")
		data := successData(t, rec)

		pubkey, _ := data["pubkey"].(string)
		secret, _ := data["secret"].(string)

		raw, err := base58.Decode(pubkey)
		if err != nil || len(raw) != 32 {
			t.Errorf("pubkey should decode to 32 bytes, got %d (err=%v)", len(raw), err)
		}
		raw, err = base58.Decode(secret)
		if err != nil || len(raw) != 64 {
			t.Errorf("secret should decode to 64 bytes, got %d (err=%v)", len(raw), err)
		}
	})

	t.Run("two requests return distinct keypairs", func(t *testing.T) {
		first := successData(t, doPost(t, h, "/keypair", ""))
		second := successData(t, doPost(t, h, "/keypair", ""))

		if first["pubkey"] == second["pubkey"] {
			t.Error("consecutive keypairs must differ")
		}
		if first["secret"] == second["secret"] {
			t.Error("consecutive secrets must differ")
		}
	})
}

func TestHandler_SignAndVerify(t *testing.T) {
	h := testHandler()

	kp := successData(t, doPost(t, h, "/keypair", ""))
	pubkey := kp["pubkey"].(string)
	secret := kp["secret"].(string)
	message := "hello solgate"

	signBody := fmt.Sprintf(`{"message": %q, "secret": %q}`, message, secret)
	signed := successData(t, doPost(t, h, "/message/sign", signBody))

	signature, _ := signed["signature"].(string)
	if signed["public_key"] != pubkey {
		t.Errorf("public_key = %v, want %v", signed["public_key"], pubkey)
	}
	if signed["message"] != message {
		t.Errorf("message = %v, want %v", signed["message"], message)
	}
	if raw, err := base64.StdEncoding.DecodeString(signature); err != nil || len(raw) != 64 {
		t.Fatalf("signature should be base64 of 64 bytes, got %d (err=%v)", len(raw), err)
	}

	verifyBody := func(msg, sig, pk string) string {
		return fmt.Sprintf(`{"message": %q, "signature": %q, "pubkey": %q}`, msg, sig, pk)
	}

	t.Run("valid signature verifies", func(t *testing.T) {
		data := successData(t, doPost(t, h, "/message/verify", verifyBody(message, signature, pubkey)))
		if data["valid"] != true {
			t.Error("expected valid=true")
		}
		if data["message"] != message || data["pubkey"] != pubkey {
			t.Error("verify response should echo message and pubkey")
		}
	})

	t.Run("tampered signature is a normal false result", func(t *testing.T) {
		raw, _ := base64.StdEncoding.DecodeString(signature)
		raw[len(raw)-1] ^= 0x01
		tampered := base64.StdEncoding.EncodeToString(raw)

		data := successData(t, doPost(t, h, "/message/verify", verifyBody(message, tampered, pubkey)))
		if data["valid"] != false {
			t.Error("expected valid=false for tampered signature")
		}
	})

	t.Run("tampered message is a normal false result", func(t *testing.T) {
		data := successData(t, doPost(t, h, "/message/verify", verifyBody(message+"!", signature, pubkey)))
		if data["valid"] != false {
			t.Error("expected valid=false for tampered message")
		}
	})

	t.Run("mismatched pubkey is a normal false result", func(t *testing.T) {
		data := successData(t, doPost(t, h, "/message/verify", verifyBody(message, signature, newPubkey(t))))
		if data["valid"] != false {
			t.Error("expected valid=false for mismatched pubkey")
		}
	})
}

func TestHandler_SignMessage_Validation(t *testing.T) {
	h := testHandler()

	t.Run("invalid request body", func(t *testing.T) {
		rec := doPost(t, h, "/message/sign", "not json")
		expectFailure(t, rec, "SG-SYS-4000")
	})

	t.Run("missing secret", func(t *testing.T) {
		rec := doPost(t, h, "/message/sign", `{"message": "hi"}`)
		expectFailure(t, rec, "SG-VAL-4002")
	})

	t.Run("missing message", func(t *testing.T) {
		rec := doPost(t, h, "/message/sign", `{"secret": "abc"}`)
		expectFailure(t, rec, "SG-VAL-4002")
	})

	t.Run("malformed secret", func(t *testing.T) {
		rec := doPost(t, h, "/message/sign", `{"message": "hi", "secret": "not-base58-0OIl"}`)
		expectFailure(t, rec, "SG-VAL-4001")
	})
}

func TestHandler_CreateToken(t *testing.T) {
	h := testHandler()
	authority := newPubkey(t)
	mint := newPubkey(t)

	t.Run("builds initialize mint instruction", func(t *testing.T) {
		body := fmt.Sprintf(`{"mintAuthority": %q, "mint": %q, "decimals": 9}`, authority, mint)
		data := successData(t, doPost(t, h, "/token/create", body))

		if data["program_id"] != tokenProgramID {
			t.Errorf("program_id = %v, want token program", data["program_id"])
		}

		accounts, ok := data["accounts"].([]any)
		if !ok || len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %v", data["accounts"])
		}
		first := accounts[0].(map[string]any)
		if first["pubkey"] != mint || first["is_writable"] != true {
			t.Errorf("first account should be the writable mint, got %v", first)
		}

		raw, err := base64.StdEncoding.DecodeString(data["instruction_data"].(string))
		if err != nil {
			t.Fatalf("instruction_data should be base64: %v", err)
		}
		if raw[0] != 0 || raw[1] != 9 {
			t.Errorf("expected initialize-mint opcode 0 with decimals 9, got %v", raw[:2])
		}
	})

	t.Run("negative decimals rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mintAuthority": %q, "mint": %q, "decimals": -1}`, authority, mint)
		expectFailure(t, doPost(t, h, "/token/create", body), "SG-VAL-4001")
	})

	t.Run("decimals above bound rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mintAuthority": %q, "mint": %q, "decimals": 19}`, authority, mint)
		expectFailure(t, doPost(t, h, "/token/create", body), "SG-VAL-4001")
	})

	t.Run("missing decimals rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mintAuthority": %q, "mint": %q}`, authority, mint)
		expectFailure(t, doPost(t, h, "/token/create", body), "SG-VAL-4002")
	})

	t.Run("malformed mint authority rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mintAuthority": "bogus", "mint": %q, "decimals": 9}`, mint)
		expectFailure(t, doPost(t, h, "/token/create", body), "SG-VAL-4001")
	})
}

func TestHandler_MintToken(t *testing.T) {
	h := testHandler()
	mint := newPubkey(t)
	destination := newPubkey(t)
	authority := newPubkey(t)

	t.Run("builds mint-to instruction", func(t *testing.T) {
		body := fmt.Sprintf(`{"mint": %q, "destination": %q, "authority": %q, "amount": 1000}`,
			mint, destination, authority)
		data := successData(t, doPost(t, h, "/token/mint", body))

		if data["program_id"] != tokenProgramID {
			t.Errorf("program_id = %v, want token program", data["program_id"])
		}

		accounts := data["accounts"].([]any)
		if len(accounts) != 3 {
			t.Fatalf("expected 3 accounts, got %d", len(accounts))
		}
		auth := accounts[2].(map[string]any)
		if auth["pubkey"] != authority || auth["is_signer"] != true {
			t.Errorf("third account should be the signing authority, got %v", auth)
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mint": %q, "destination": %q, "authority": %q, "amount": 0}`,
			mint, destination, authority)
		expectFailure(t, doPost(t, h, "/token/mint", body), "SG-VAL-4001")
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"mint": %q, "destination": %q, "authority": %q}`,
			mint, destination, authority)
		expectFailure(t, doPost(t, h, "/token/mint", body), "SG-VAL-4002")
	})
}

func TestHandler_SendSOL(t *testing.T) {
	h := testHandler()
	from := newPubkey(t)
	to := newPubkey(t)

	t.Run("builds transfer instruction", func(t *testing.T) {
		body := fmt.Sprintf(`{"from": %q, "to": %q, "lamports": 5000}`, from, to)
		data := successData(t, doPost(t, h, "/send/sol", body))

		if data["program_id"] != systemProgramID {
			t.Errorf("program_id = %v, want system program", data["program_id"])
		}

		accounts := data["accounts"].([]any)
		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}
		sender := accounts[0].(map[string]any)
		if sender["pubkey"] != from || sender["is_signer"] != true {
			t.Errorf("first account should be the signing sender, got %v", sender)
		}

		raw, err := base64.StdEncoding.DecodeString(data["instruction_data"].(string))
		if err != nil || len(raw) != 12 {
			t.Errorf("transfer data should be 12 bytes, got %d (err=%v)", len(raw), err)
		}
	})

	t.Run("zero lamports rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"from": %q, "to": %q, "lamports": 0}`, from, to)
		expectFailure(t, doPost(t, h, "/send/sol", body), "SG-VAL-4001")
	})

	t.Run("missing lamports rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"from": %q, "to": %q}`, from, to)
		expectFailure(t, doPost(t, h, "/send/sol", body), "SG-VAL-4002")
	})
}

func TestHandler_SendToken(t *testing.T) {
	h := testHandler()
	destination := newPubkey(t)
	mint := newPubkey(t)
	owner := newPubkey(t)

	t.Run("builds token transfer from derived source account", func(t *testing.T) {
		body := fmt.Sprintf(`{"destination": %q, "mint": %q, "owner": %q, "amount": 42}`,
			destination, mint, owner)
		data := successData(t, doPost(t, h, "/send/token", body))

		if data["program_id"] != tokenProgramID {
			t.Errorf("program_id = %v, want token program", data["program_id"])
		}

		accounts := data["accounts"].([]any)
		if len(accounts) != 3 {
			t.Fatalf("expected 3 accounts, got %d", len(accounts))
		}

		// Source is the owner's associated token account, not the owner itself.
		source := accounts[0].(map[string]any)
		if source["pubkey"] == owner {
			t.Error("source account should be the derived token account")
		}
		ownerMeta := accounts[2].(map[string]any)
		if ownerMeta["pubkey"] != owner || ownerMeta["is_signer"] != true {
			t.Errorf("third account should be the signing owner, got %v", ownerMeta)
		}
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		body := fmt.Sprintf(`{"destination": %q, "mint": %q, "owner": %q}`, destination, mint, owner)
		expectFailure(t, doPost(t, h, "/send/token", body), "SG-VAL-4002")
	})
}

// TestHandler_MissingFieldsNeverCrash sends an empty object to every
// operation endpoint and expects a clean failure envelope, never a 5xx.
func TestHandler_MissingFieldsNeverCrash(t *testing.T) {
	h := testHandler()

	paths := []string{
		"/token/create",
		"/token/mint",
		"/message/sign",
		"/message/verify",
		"/send/sol",
		"/send/token",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doPost(t, h, path, `{}`)

			if rec.Code >= 500 {
				t.Fatalf("expected 4xx, got %d", rec.Code)
			}
			resp := decodeResponse(t, rec)
			if resp.Success {
				t.Error("expected failure envelope")
			}
			if resp.Error == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}
