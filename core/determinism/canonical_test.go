package determinism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStringIsKeySorted(t *testing.T) {
	out := CanonicalString(map[string]string{
		"zeta":  "3",
		"alfa":  "1",
		"bravo": "2",
	})
	assert.Equal(t, "alfa=1\nbravo=2\nzeta=3\n", out)
}

func TestHashFieldsIndependentOfInsertionOrder(t *testing.T) {
	a := HashFields(map[string]string{"x": "1", "y": "2"})
	b := HashFields(map[string]string{"y": "2", "x": "1"})
	assert.Equal(t, a.Hex(), b.Hex())
}

func TestHashFieldsSensitiveToValues(t *testing.T) {
	a := HashFields(map[string]string{"x": "1"})
	b := HashFields(map[string]string{"x": "2"})
	assert.NotEqual(t, a.Hex(), b.Hex())
}

func TestContentHashString(t *testing.T) {
	h := ComputeHash([]byte("visia"))
	assert.Len(t, h.Hex(), 64)
	assert.Len(t, h.String(), 19)
}
