package services

import (
	"testing"
	"time"

	"adproof/internal/models"
)

func TestShareSignerRoundTrip(t *testing.T) {
	signer := NewShareSigner("test-secret", time.Hour)

	content := models.CreativeContent{
		Headline:    "Save 20%",
		CTALabel:    "Shop Now",
		AccentColor: "#E94560",
		DarkTheme:   true,
	}
	transform := models.ImageTransform{Scale: 1.2, Offset: models.Offset{X: 4, Y: -3}}

	token, err := signer.Sign(content, transform)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := signer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Content != content {
		t.Fatalf("content mismatch: %+v", claims.Content)
	}
	if claims.Transform != transform {
		t.Fatalf("transform mismatch: %+v", claims.Transform)
	}
}

func TestShareSignerRejectsWrongSecret(t *testing.T) {
	token, err := NewShareSigner("secret-a", time.Hour).Sign(models.CreativeContent{}, models.ImageTransform{})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewShareSigner("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestShareSignerRejectsTampering(t *testing.T) {
	signer := NewShareSigner("test-secret", time.Hour)
	token, err := signer.Sign(models.CreativeContent{Headline: "a"}, models.ImageTransform{})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := signer.Parse(tampered); err == nil {
		t.Fatal("expected parse failure for tampered token")
	}
}

func TestShareSignerRejectsExpired(t *testing.T) {
	signer := NewShareSigner("test-secret", -time.Hour)
	token, err := signer.Sign(models.CreativeContent{}, models.ImageTransform{})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := signer.Parse(token); err == nil {
		t.Fatal("expected expiry failure")
	}
}
