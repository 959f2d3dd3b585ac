package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("localhost:8080", time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded *resty.Client")
	}
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"https://blog.example.com", "https://blog.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			client := NewHTTPClient(tt.in, time.Second)
			if client.BaseURL != tt.want {
				t.Errorf("expected %q, got %q", tt.want, client.BaseURL)
			}
		})
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("a:1", time.Second)
	client2 := NewHTTPClient("a:1", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("a:1", 3*time.Second)
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", client.GetClient().Timeout)
	}
}
