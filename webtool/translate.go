package webtool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// languageAliases maps spelled-out language names (and their Russian
// forms, which users of the original bot type) to ISO codes. Unknown
// values pass through unchanged so any code the endpoint understands
// still works.
var languageAliases = map[string]string{
	"en":          "en",
	"english":     "en",
	"английский":  "en",
	"de":          "de",
	"german":      "de",
	"немецкий":    "de",
	"fr":          "fr",
	"french":      "fr",
	"французский": "fr",
	"ru":          "ru",
	"russian":     "ru",
	"русский":     "ru",
}

// NormalizeLanguage resolves a language name or code to an ISO code.
func NormalizeLanguage(lang string) string {
	normalized := strings.ToLower(strings.TrimSpace(lang))
	if code, ok := languageAliases[normalized]; ok {
		return code
	}
	return normalized
}

// Translator translates text through Google Translate's public gtx
// endpoint (no API key required).
type Translator struct {
	baseURL string
	http    *http.Client
}

// NewTranslator creates a translator against the public endpoint.
func NewTranslator() *Translator {
	return &Translator{
		baseURL: "https://translate.googleapis.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Translate translates text into the target language. source may be
// "auto" (or empty) for auto-detection. Both languages accept names or
// codes known to NormalizeLanguage.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is empty")
	}

	sl := NormalizeLanguage(source)
	if sl == "" {
		sl = "auto"
	}
	tl := NormalizeLanguage(target)
	if tl == "" {
		return "", fmt.Errorf("target language is empty")
	}

	endpoint := fmt.Sprintf("%s/translate_a/single?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		t.baseURL, url.QueryEscape(sl), url.QueryEscape(tl), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned %d", resp.StatusCode)
	}

	// The gtx response is nested arrays: the first element lists
	// segments, each segment's first element is the translated text.
	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("failed to parse translate response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]any
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("failed to parse translate segments: %w", err)
	}

	var out strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if piece, ok := segment[0].(string); ok {
			out.WriteString(piece)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("translate returned no text")
	}

	return out.String(), nil
}
