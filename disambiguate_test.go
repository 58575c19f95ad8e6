package chrono

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestDisambiguationString(t *testing.T) {
	expect.String(Raise.String()).ToBe(t, "raise")
	expect.String(Earlier.String()).ToBe(t, "earlier")
	expect.String(Later.String()).ToBe(t, "later")
	expect.String(Compatible.String()).ToBe(t, "compatible")
}

func TestParseDisambiguation(t *testing.T) {
	d, err := ParseDisambiguation("later")
	expect.Error(err).ToBeNil(t)
	expect.Any(d).ToBe(t, Later)

	_, err = ParseDisambiguation("whenever")
	expect.Error(err).ToHaveOccurred(t)
}
