package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestimonial(t *testing.T) {
	tests := []struct {
		name       string
		details    Details
		wantRating int
		wantErr    error
	}{
		{
			name:       "default rating",
			details:    Details{Name: "Reza", Role: "Importer", Content: "Fast transfers.", Language: "en"},
			wantRating: 5,
		},
		{
			name:       "explicit rating",
			details:    Details{Name: "Mina", Role: "Student", Content: "خیلی خوب", Language: "fa", Rating: 4},
			wantRating: 4,
		},
		{
			name:    "rating too high",
			details: Details{Name: "A", Role: "B", Content: "C", Language: "en", Rating: 6},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "negative rating",
			details: Details{Name: "A", Role: "B", Content: "C", Language: "en", Rating: -1},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "missing role",
			details: Details{Name: "A", Content: "C", Language: "en"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "unsupported language",
			details: Details{Name: "A", Role: "B", Content: "C", Language: "fr"},
			wantErr: ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTestimonial(tt.details)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRating, got.Rating())
			assert.True(t, got.IsActive())
		})
	}
}

func TestTestimonial_Update(t *testing.T) {
	tm, err := NewTestimonial(Details{Name: "Reza", Role: "Importer", Content: "Good", Language: "en"})
	require.NoError(t, err)

	err = tm.Update(Details{Name: "Reza", Role: "Importer", Content: "Great", Language: "en", Rating: 3}, false)
	require.NoError(t, err)
	assert.Equal(t, "Great", tm.Content())
	assert.Equal(t, 3, tm.Rating())
	assert.False(t, tm.IsActive())
}
