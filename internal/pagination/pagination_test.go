package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		req        PageRequest
		wantData   []int
		wantPages  int
		wantPage   int
		wantPageSz int
	}{
		{name: "defaults", req: PageRequest{}, wantData: []int{1, 2, 3, 4, 5}, wantPages: 1, wantPage: 1, wantPageSz: 20},
		{name: "first_page", req: PageRequest{Page: 1, PageSize: 2}, wantData: []int{1, 2}, wantPages: 3, wantPage: 1, wantPageSz: 2},
		{name: "last_partial_page", req: PageRequest{Page: 3, PageSize: 2}, wantData: []int{5}, wantPages: 3, wantPage: 3, wantPageSz: 2},
		{name: "past_the_end", req: PageRequest{Page: 9, PageSize: 2}, wantData: []int{}, wantPages: 3, wantPage: 9, wantPageSz: 2},
		{name: "offset_overflow", req: PageRequest{Page: 922337203685477581, PageSize: 20}, wantData: []int{}, wantPages: 1, wantPage: 922337203685477581, wantPageSz: 20},
		{name: "huge_page_size", req: PageRequest{Page: 2, PageSize: 1 << 62}, wantData: []int{}, wantPages: 1, wantPage: 2, wantPageSz: 1 << 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.req)
			if len(got.Data) != len(tt.wantData) {
				t.Fatalf("expected %v, got %v", tt.wantData, got.Data)
			}
			for i := range got.Data {
				if got.Data[i] != tt.wantData[i] {
					t.Errorf("expected %v, got %v", tt.wantData, got.Data)
				}
			}
			if got.TotalItems != 5 || got.TotalPages != tt.wantPages {
				t.Errorf("expected 5 items over %d pages, got %d over %d", tt.wantPages, got.TotalItems, got.TotalPages)
			}
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSz {
				t.Errorf("expected page %d size %d, got %d size %d", tt.wantPage, tt.wantPageSz, got.Page, got.PageSize)
			}
		})
	}
}

func TestNewPageResponse_NilData(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 20, 0)
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
}
