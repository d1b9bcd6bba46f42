package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/apperr"
	"github.com/artem13815/career/pkg/resume/content"
)

func TestDecodeLegacyDocument(t *testing.T) {
	raw := []byte(`{"personalInfo":{"name":"Jane Doe"},"summary":"s","experience":[{"title":"Engineer","company":"Acme","duration":"2020"}],"skills":["Go"]}`)
	doc, err := content.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, content.CurrentVersion, doc.FormatVersion)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
	assert.NotNil(t, doc.Experience[0].Achievements)
	assert.NotNil(t, doc.Education)
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"fileName":`,
		"future version":  `{"formatVersion":2}`,
		"untitled job":    `{"experience":[{"company":"Acme"}]}`,
		"blank skill":     `{"skills":["Go"," "]}`,
		"empty education": `{"education":[{"year":"2010"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := content.Decode([]byte(raw))
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := content.Fallback("Data Engineer", "https://linkedin.com/in/test")
	raw, err := content.Encode(doc)
	require.NoError(t, err)
	back, err := content.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestFallback(t *testing.T) {
	doc := content.Fallback("", "")
	require.NoError(t, doc.Validate())
	assert.Equal(t, "Professional User", doc.PersonalInfo.Name)
	assert.Equal(t, []string{"Leadership", "Communication", "Technical Skills"}, doc.Skills)
	assert.Contains(t, content.Fallback("SRE", "").Summary, "SRE")
}
