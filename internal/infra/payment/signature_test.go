//go:build !integration

package payment

import (
	"strings"
	"testing"
)

func TestOrderSignature(t *testing.T) {
	t.Run("should produce lowercase hex of fixed length", func(t *testing.T) {
		sig := OrderSignature("s3cr3t", "order_1", "pay_1")
		if len(sig) != 64 {
			t.Fatalf("expected 64 hex chars for a SHA-256 digest, got %d", len(sig))
		}
		if sig != strings.ToLower(sig) {
			t.Errorf("expected lowercase hex, got %q", sig)
		}
	})

	t.Run("should depend on every input", func(t *testing.T) {
		base := OrderSignature("s3cr3t", "order_1", "pay_1")
		if OrderSignature("other", "order_1", "pay_1") == base {
			t.Error("changing the secret must change the signature")
		}
		if OrderSignature("s3cr3t", "order_2", "pay_1") == base {
			t.Error("changing the order id must change the signature")
		}
		if OrderSignature("s3cr3t", "order_1", "pay_2") == base {
			t.Error("changing the payment id must change the signature")
		}
	})
}

func TestVerifyOrderSignature(t *testing.T) {
	t.Run("should accept the recomputed signature", func(t *testing.T) {
		sig := OrderSignature("s3cr3t", "order_1", "pay_1")
		if !VerifyOrderSignature("s3cr3t", "order_1", "pay_1", sig) {
			t.Fatal("round-tripped signature must verify")
		}
	})

	t.Run("should reject any single-character mutation", func(t *testing.T) {
		sig := OrderSignature("s3cr3t", "order_1", "pay_1")
		for i := 0; i < len(sig); i++ {
			mutated := []byte(sig)
			if mutated[i] == '0' {
				mutated[i] = '1'
			} else {
				mutated[i] = '0'
			}
			if VerifyOrderSignature("s3cr3t", "order_1", "pay_1", string(mutated)) {
				t.Fatalf("mutation at index %d must not verify", i)
			}
		}
	})

	t.Run("should reject empty and bogus signatures", func(t *testing.T) {
		if VerifyOrderSignature("s3cr3t", "order_1", "pay_1", "") {
			t.Error("empty signature must not verify")
		}
		if VerifyOrderSignature("s3cr3t", "order_1", "pay_1", "0000") {
			t.Error("bogus signature must not verify")
		}
	})
}
