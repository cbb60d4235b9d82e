package services

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantErr       bool
	}{
		{"min", 1, 0, false},
		{"max", 100, 0, false},
		{"large offset", 20, 1_000_000, false},
		{"zero limit", 0, 0, true},
		{"limit over max", 101, 0, true},
		{"negative limit", -1, 0, true},
		{"negative offset", 10, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPage(tt.limit, tt.offset)
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidPagination) {
					t.Fatalf("expected ErrInvalidPagination, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Limit != tt.limit || p.Offset != tt.offset {
				t.Fatalf("page = %+v", p)
			}
		})
	}
}

func TestDefaultPage(t *testing.T) {
	p := DefaultPage()
	if p.Limit != common.DefaultFeedLimit || p.Offset != 0 {
		t.Fatalf("DefaultPage() = %+v", p)
	}
}
