package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSemanticColors(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		success string
		errCol  string
		info    string
	}{
		{name: "green seed switches success to teal", seed: "#6EB544", success: SuccessTeal, errCol: ErrorRed, info: InfoBlue},
		{name: "blue seed switches info to indigo", seed: "#2B4C9B", success: SuccessGreen, errCol: ErrorRed, info: InfoIndigo},
		{name: "red seed switches error to rose", seed: "#D62828", success: SuccessGreen, errCol: ErrorRose, info: InfoBlue},
		{name: "purple seed keeps defaults", seed: "#7B2CBF", success: SuccessGreen, errCol: ErrorRed, info: InfoBlue},
		{name: "gray seed keeps defaults", seed: "#808080", success: SuccessGreen, errCol: ErrorRed, info: InfoBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := GenerateSemanticColors(tt.seed)
			assert.Equal(t, tt.success, sc.Success)
			assert.Equal(t, tt.errCol, sc.Error)
			assert.Equal(t, tt.info, sc.Info)
			assert.Equal(t, WarningAmber, sc.Warning)
			assert.Equal(t, FixedWhatsApp, sc.Fixed)
		})
	}
}
