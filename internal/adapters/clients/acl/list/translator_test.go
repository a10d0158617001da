package list

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestToDomainListsWithCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dtos      []ListWithCountDTO
		wantLen   int
		wantCount []*int
	}{
		{
			name:    "nil payload yields empty slice",
			dtos:    nil,
			wantLen: 0,
		},
		{
			name: "count preserved including null",
			dtos: []ListWithCountDTO{
				{ID: 1, Name: "Groceries", Count: intPtr(4)},
				{ID: 2, Name: "Hardware", Count: nil},
			},
			wantLen:   2,
			wantCount: []*int{intPtr(4), nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToDomainListsWithCount(tt.dtos)

			if got == nil {
				t.Fatal("ToDomainListsWithCount() = nil, want non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for i, want := range tt.wantCount {
				switch {
				case want == nil && got[i].Count != nil:
					t.Errorf("[%d].Count = %d, want nil", i, *got[i].Count)
				case want != nil && (got[i].Count == nil || *got[i].Count != *want):
					t.Errorf("[%d].Count = %v, want %d", i, got[i].Count, *want)
				}
			}
		})
	}
}

func TestListWithCountDTO_DecodesNullCount(t *testing.T) {
	t.Parallel()

	var dtos []ListWithCountDTO
	if err := json.Unmarshal([]byte(`[{"id":3,"name":"Party","count":null}]`), &dtos); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := ToDomainListsWithCount(dtos)
	if got[0].ID != 3 || got[0].Name != "Party" {
		t.Errorf("got %+v, want id 3 name Party", got[0])
	}
	if got[0].Count != nil {
		t.Errorf("Count = %d, want nil", *got[0].Count)
	}
}

func TestToDomainList(t *testing.T) {
	t.Parallel()

	got := ToDomainList(ListDTO{ID: 7, Name: "Weekend"})
	if got.ID != 7 || got.Name != "Weekend" {
		t.Errorf("ToDomainList() = %+v, want {7 Weekend}", got)
	}
}
