package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CRM Platforms", "crm-platforms"},
		{"Migración de Datos", "migracion-de-datos"},
		{"  --Hello,   World!--  ", "hello-world"},
		{"Reportes y Análisis", "reportes-y-analisis"},
		{"Ñandú 2024", "nandu-2024"},
		{"", ""},
		{"***", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
