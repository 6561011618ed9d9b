package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBloodGroup(t *testing.T) {
	tests := []struct {
		in   string
		want BloodGroup
		ok   bool
	}{
		{"A+", BloodGroupAPos, true},
		{" o- ", BloodGroupONeg, true},
		{"ab+", BloodGroupABPos, true},
		{"AB ", BloodGroupABPos, true},
		{"B", "B", false},
		{"C+", "C+", false},
	}
	for _, tt := range tests {
		got, ok := ParseBloodGroup(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestDonationRequestNormalize(t *testing.T) {
	r := DonationRequest{
		ID:                " 1 ",
		BloodGroup:        "o+",
		RecipientDistrict: " Dhaka ",
		Status:            " InProgress ",
	}.Normalize()

	assert.Equal(t, "1", r.ID)
	assert.Equal(t, BloodGroupOPos, r.BloodGroup)
	assert.Equal(t, "Dhaka", r.RecipientDistrict)
	assert.Equal(t, StatusInProgress, r.Status)
	assert.Equal(t, "In Progress", r.Status.Label())
}

func TestFundingNormalize(t *testing.T) {
	assert.Equal(t, AnonymousDonor, Funding{DonorName: "  "}.Normalize().DonorName)
	assert.Equal(t, "Nadia", Funding{DonorName: " Nadia"}.Normalize().DonorName)
}

func TestTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("DARK", ThemeLight))
	assert.Equal(t, ThemeLight, ParseTheme("blue", ThemeLight))
	assert.Equal(t, ThemeDark, ParseTheme("", ThemeDark))
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
}

func TestIconPath(t *testing.T) {
	p, ok := IconDrop.Path()
	assert.True(t, ok)
	assert.NotEmpty(t, p)

	_, ok = Icon("rocket").Path()
	assert.False(t, ok)
}
