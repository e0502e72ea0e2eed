package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   OffsetRequest
		want OffsetRequest
	}{
		{"zero values", OffsetRequest{}, OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"negative page", OffsetRequest{Page: -3, Size: 5}, OffsetRequest{Page: 1, Size: 5}},
		{"size capped", OffsetRequest{Page: 2, Size: 5000}, OffsetRequest{Page: 2, Size: PageMaxSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			assert.NoError(t, req.Validate())
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10))
	assert.Equal(t, 10, OffsetRequest{Page: 2, Size: 10}.Offset())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Equal(t, []int{}, Paginate(items, 4, 2))
	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{}, Paginate(items, 1, 0))
}

func TestNewOffsetResult(t *testing.T) {
	r := NewOffsetResult([]int{1, 2}, 5, 2, 2)
	assert.True(t, r.HasMore)
	assert.Equal(t, 3, r.Pages)
	assert.Equal(t, int64(5), r.Total)

	r = NewOffsetResult([]int{5}, 5, 3, 2)
	assert.False(t, r.HasMore)

	r = NewOffsetResult([]int{}, 0, 1, 20)
	assert.Zero(t, r.Pages)
	assert.False(t, r.HasMore)
}
