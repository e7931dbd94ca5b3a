package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWriter(&buf, "fixture-generator")

	logger.Info().Str("path", "fixtures/db.json").Msg("written")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "service=fixture-generator")
	assert.Contains(t, out, "path=fixtures/db.json")
	assert.Contains(t, out, "written")
	assert.NotContains(t, out, "hidden")
}
