package curriculum

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseWeek decodes one week document from a content pack and validates it.
// Unknown keys are rejected so typos in authored files surface early.
func ParseWeek(r io.Reader) (Week, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var w Week
	if err := dec.Decode(&w); err != nil {
		if err == io.EOF {
			return Week{}, fmt.Errorf("%w: empty document", ErrInvalidWeek)
		}
		return Week{}, fmt.Errorf("decode week: %w", err)
	}
	if err := ValidateWeek(w); err != nil {
		return Week{}, err
	}
	return w, nil
}

// Fingerprint returns a short, stable hash of the catalog's content. Two
// catalogs with identical weeks share a fingerprint.
func (c *Catalog) Fingerprint() string {
	h := sha256.New()
	for _, n := range c.WeekNumbers() {
		// Week holds only strings, ints and slices of them; Marshal cannot fail.
		b, _ := json.Marshal(c.weeks[n])
		h.Write(b)
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
