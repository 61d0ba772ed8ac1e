package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"region-directory/pkg/model"
)

func TestIsValidID(t *testing.T) {
	valid := []string{"10", "01", "78", "001", "010", "100", "999", "35"}
	for _, id := range valid {
		assert.Truef(t, IsValidID(id), "expected %q to be valid", id)
	}

	invalid := []string{"", "0", "00", "000", "1", "1000", "0000", "7a", "ab", " 78", "78 ", "-10"}
	for _, id := range invalid {
		assert.Falsef(t, IsValidID(id), "expected %q to be invalid", id)
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("город Москва"))
	assert.True(t, IsValidName("Ханты-Мансийский автономный округ (Югра)"))
	assert.False(t, IsValidName("123"))
	assert.False(t, IsValidName("Moscow"))
	assert.False(t, IsValidName(""))
}

func TestIsValidShortName(t *testing.T) {
	assert.True(t, IsValidShortName("МСК"))
	assert.False(t, IsValidShortName("мск"))
	assert.False(t, IsValidShortName("МС"))
	assert.False(t, IsValidShortName("МСКВ"))
	assert.False(t, IsValidShortName("MSK"))
}

func TestIsValidNameBeginning(t *testing.T) {
	assert.True(t, IsValidNameBeginning("Вол"))
	assert.True(t, IsValidNameBeginning("В"))
	assert.False(t, IsValidNameBeginning("вол"))
	assert.False(t, IsValidNameBeginning("Вол "))
	assert.False(t, IsValidNameBeginning("123"))
}

func TestParamValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"valid id", ID("78"), ""},
		{"zero id", ID("00"), MsgIDInvalid},
		{"empty id", ID(""), MsgIDInvalid},
		{"valid name", Name("город Москва"), ""},
		{"digit name", Name("123"), MsgNameInvalid},
		{"empty name", Name(""), MsgNameParamBlank},
		{"blank name", Name("   "), MsgNameParamBlank},
		{"long name", Name(strings.Repeat("а", MaxNameLength+1)), MsgNameParamTooLong},
		{"max length name", Name(strings.Repeat("а", MaxNameLength)), ""},
		{"valid beginning", NameBeginning("Вол"), ""},
		{"empty beginning", NameBeginning(""), MsgNameBeginningInvalid},
		{"digit beginning", NameBeginning("123"), MsgNameBeginningInvalid},
		{"long beginning", NameBeginning("В" + strings.Repeat("а", MaxNameLength)), MsgNameBeginningTooLong},
		{"valid short name", ShortName("МСК"), ""},
		{"empty short name", ShortName(""), MsgShortNameParamInvalid},
		{"lower short name", ShortName("мск"), MsgShortNameParamInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.message == "" {
				assert.NoError(t, tt.err)
				return
			}
			var errs Errors
			require.ErrorAs(t, tt.err, &errs)
			assert.Equal(t, Errors{tt.message}, errs)
		})
	}
}

func TestStructCollectsMessagesInFieldOrder(t *testing.T) {
	t.Run("valid region", func(t *testing.T) {
		err := Struct(&model.RegionDTO{ID: "78", Name: "город Москва", ShortName: "МСК"})
		assert.NoError(t, err)
	})

	t.Run("empty region reports blank and pattern messages", func(t *testing.T) {
		err := Struct(&model.RegionDTO{})

		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, Errors{MsgIDBlank, MsgIDInvalid, MsgNameBlank, MsgNameInvalid, MsgShortNameInvalid}, errs)
	})

	t.Run("blank fields with a valid short name", func(t *testing.T) {
		err := Struct(&model.RegionDTO{ShortName: "МСК"})

		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, Errors{MsgIDBlank, MsgIDInvalid, MsgNameBlank, MsgNameInvalid}, errs)
	})

	t.Run("whitespace name matches the name pattern", func(t *testing.T) {
		err := Struct(&model.RegionDTO{ID: "78", Name: "   ", ShortName: "МСК"})

		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, Errors{MsgNameBlank}, errs)
	})

	t.Run("pattern failures", func(t *testing.T) {
		err := Struct(model.RegionDTO{ID: "000", Name: "Moscow", ShortName: "MSK"})

		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, Errors{MsgIDInvalid, MsgNameInvalid, MsgShortNameInvalid}, errs)
	})

	t.Run("single failing field", func(t *testing.T) {
		err := Struct(&model.RegionDTO{ID: "78", Name: "город Москва", ShortName: "мск"})

		var errs Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, Errors{MsgShortNameInvalid}, errs)
	})

	t.Run("non-struct values pass", func(t *testing.T) {
		assert.NoError(t, Struct(nil))
		assert.NoError(t, Struct("region"))
		var dto *model.RegionDTO
		assert.NoError(t, Struct(dto))
	})
}

func TestErrorsJoinsMessages(t *testing.T) {
	err := Errors{MsgIDBlank, MsgNameBlank}
	assert.Equal(t, MsgIDBlank+"; "+MsgNameBlank, err.Error())
}
