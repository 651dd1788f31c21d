package moderation

import "testing"

func TestIsAdmissible(t *testing.T) {
	m := New(
		[]string{"폭력", "마약", "도박", "bomb"},
		[]string{"폭력예방", "마약퇴치"},
	)

	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{
			name:    "clean keyword passes",
			keyword: "우주 탐사",
			want:    true,
		},
		{
			name:    "forbidden term rejects",
			keyword: "폭력",
			want:    false,
		},
		{
			name:    "forbidden term embedded in a longer keyword rejects",
			keyword: "학교 폭력의 역사",
			want:    false,
		},
		{
			name:    "allowed compound passes even though it contains a forbidden term",
			keyword: "폭력예방 교육",
			want:    true,
		},
		{
			name:    "allowed compound plus a separate forbidden term rejects",
			keyword: "마약퇴치와 도박",
			want:    false,
		},
		{
			name:    "case is ignored",
			keyword: "BOMB shelter",
			want:    false,
		},
		{
			name:    "surrounding whitespace is ignored",
			keyword: "  폭력  ",
			want:    false,
		},
		{
			name:    "empty keyword passes moderation",
			keyword: "",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsAdmissible(tt.keyword); got != tt.want {
				t.Errorf("IsAdmissible(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestIsAdmissibleNoAllowList(t *testing.T) {
	m := New([]string{"도박"}, nil)

	if m.IsAdmissible("도박 중독") {
		t.Error("IsAdmissible() = true, want false")
	}
	if !m.IsAdmissible("독서") {
		t.Error("IsAdmissible() = false, want true")
	}
}
