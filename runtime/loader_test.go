package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"echo-lab/domain"
)

func TestLoadPersonaCatalog(t *testing.T) {
	req := require.New(t)

	personas, err := LoadPersonaCatalog()
	req.NoError(err)
	req.Len(personas, 7)

	// Roster order matters: the facilitator leads, the system voice is fourth
	req.Equal("Aria", personas[0].Name)
	req.Equal(domain.RoleFacilitator, personas[0].Role)
	req.Equal(domain.PlatformSystem, personas[3].Platform)
	req.Equal(domain.RoleSynthesizer, personas[3].Role)

	for _, persona := range personas {
		req.NotEmpty(persona.Name)
		req.NotEmpty(persona.Platform)
		req.NotEmpty(persona.Role)
		req.NotEmpty(persona.Specializations)
	}
}
