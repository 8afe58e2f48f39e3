package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   Key
		wantOK bool
	}{
		{"Trailing segment", "https://adt.arcanum.com/ro/view/Energetica_1969", "Energetica_1969", true},
		{"Trailing slash", "https://adt.arcanum.com/ro/view/Energetica_1969/", "Energetica_1969", true},
		{"Nested path", "https://adt.arcanum.com/ro/view/Energetica_1969/?pg=3", "Energetica_1969", true},
		{"Query string", "https://adt.arcanum.com/ro/view/Energetica_1969?pg=3", "Energetica_1969", true},
		{"Diacritics kept", "https://adt.arcanum.com/ro/view/Știința_1970", "Știința_1970", true},
		{"No view segment", "https://adt.arcanum.com/ro/collection/Energetica", "", false},
		{"Empty view", "https://adt.arcanum.com/ro/view/", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFolder(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   Key
		wantOK bool
	}{
		{"Issue suffix", "Energetica, 1969 (Anul 17, nr. 2-8)", "Energetica_1969", true},
		{"Spaces removed", "Stiinta si Tehnica, 1964", "StiintasiTehnica_1964", true},
		{"Cedilla-free diacritics folded", "Știința și Tehnica, 1964", "StiintasiTehnica_1964", true},
		{"Capital T with comma", "Țara Noastră, 1930", "TaraNoastră_1930", true},
		{"Other diacritics kept", "Revista Învățământului, 1955", "RevistaÎnvătământului_1955", true},
		{"No space after comma", "Energetica,1969", "Energetica_1969", true},
		{"Tabs removed", "Energetica\tNoua, 1969", "EnergeticaNoua_1969", true},
		{"Short year", "Energetica, 69", "", false},
		{"No comma", "Energetica 1969", "", false},
		{"Empty title", " , 1969", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromFolder(tt.folder)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Key
		wantOK   bool
	}{
		{"Segment file", "Energetica_1969-1627417979__pages400-449.pdf", "Energetica_1969", true},
		{"Underscore after year", "StiintaSiTehnica_1964_extra__pages1-49.pdf", "StiintaSiTehnica_1964", true},
		{"No year", "Energetica__pages1-49.pdf", "", false},
		{"Leading underscore", "_1969__pages1-49.pdf", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromFilename(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeysJoinAcrossSources(t *testing.T) {
	folder, ok := FromFolder("Energetica, 1969 (Anul 17, nr. 2-8)")
	assert.True(t, ok)

	file, ok := FromFilename("Energetica_1969-1627417979__pages400-449.pdf")
	assert.True(t, ok)

	url, ok := FromURL("https://adt.arcanum.com/ro/view/Energetica_1969")
	assert.True(t, ok)

	assert.Equal(t, Key("Energetica_1969"), folder)
	assert.Equal(t, folder, file)
	assert.Equal(t, folder, url)
}
