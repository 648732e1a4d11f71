package turkish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dugme", Normalize("Düğme"))
	assert.Equal(t, "atanmamis isler", Normalize("Atanmamış İşler"))
	assert.Equal(t, "tamamlandi", Normalize("TAMAMLANDI"))
	assert.Equal(t, "corap", Normalize("Çorap"))
	assert.Equal(t, "", Normalize(""))
}

func TestIncludes(t *testing.T) {
	assert.True(t, Includes("Düğme", "dugme"))
	assert.True(t, Includes("Düğme", "DÜĞME"))
	assert.False(t, Includes("Düğme", "xyz"))

	// empty needle always matches
	assert.True(t, Includes("Düğme", ""))
	assert.True(t, Includes("", ""))

	assert.True(t, Includes("Tamamlanan İşler", "tamamlanan"))
	assert.True(t, Includes("Dikim Atölyesi", "atolye"))
}
