package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProcessConfig(t *testing.T) {
	path := writeTempFile(t, "process.json", `{"port": "/dev/ttyUSB0"}`)
	cfg, err := LoadProcessConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Port)
}

func minimalDeviceSpecJSON() string {
	return `{
		"variables": [
			{"name": "polling_address", "type": "U8", "value": 0},
			{"name": "response_code", "type": "U8"},
			{"name": "expanded_device_type", "type": "U16", "value": 9830},
			{"name": "device_id", "type": "U24", "value": 1193046},
			{"name": "pressure_units", "type": "U8", "value": 12}
		],
		"commands": []
	}`
}

func TestBuildDeviceFromMinimalSpec(t *testing.T) {
	path := writeTempFile(t, "device.json", minimalDeviceSpecJSON())
	spec, err := LoadDeviceSpec(path)
	require.NoError(t, err)

	dev, err := BuildDevice(spec)
	require.NoError(t, err)

	assert.EqualValues(t, 0, dev.PollingAddress.Value())
	assert.EqualValues(t, 9830, dev.ExpandedDeviceType.Value())
	assert.EqualValues(t, 1193046, dev.DeviceID.Value())
	assert.Equal(t, dev.UniqueAddress(), dev.LongAddress)
	assert.Contains(t, dev.NamedVariables, "pressure_units")
}

func TestBuildDeviceMissingRequiredVariableFails(t *testing.T) {
	raw := `{"variables": [{"name": "polling_address", "type": "U8"}], "commands": []}`
	path := writeTempFile(t, "device.json", raw)
	spec, err := LoadDeviceSpec(path)
	require.NoError(t, err)

	_, err = BuildDevice(spec)
	assert.Error(t, err)
}

func TestBuildDeviceWithDynamicCommand(t *testing.T) {
	raw := `{
		"variables": [
			{"name": "polling_address", "type": "U8"},
			{"name": "response_code", "type": "U8"},
			{"name": "expanded_device_type", "type": "U16", "value": 9830},
			{"name": "device_id", "type": "U24", "value": 1193046},
			{"name": "custom_tag", "type": "Ascii", "size": 6, "value": "ABCDEF"}
		],
		"commands": [
			{"number": 200, "request": [], "reply": [{"name": "response_code"}, {"name": "custom_tag"}]}
		]
	}`
	path := writeTempFile(t, "device.json", raw)
	spec, err := LoadDeviceSpec(path)
	require.NoError(t, err)

	dev, err := BuildDevice(spec)
	require.NoError(t, err)

	dc, ok := dev.DynamicCommands[200]
	require.True(t, ok, "expected command 200 to be registered")
	require.Len(t, dc.Reply, 2)
	assert.Equal(t, "custom_tag", dc.Reply[1])
}

func TestBuildDeviceCommandReferencingUndeclaredVariableFails(t *testing.T) {
	raw := `{
		"variables": [
			{"name": "polling_address", "type": "U8"},
			{"name": "response_code", "type": "U8"},
			{"name": "expanded_device_type", "type": "U16"},
			{"name": "device_id", "type": "U24"}
		],
		"commands": [
			{"number": 200, "request": [], "reply": [{"name": "ghost"}]}
		]
	}`
	path := writeTempFile(t, "device.json", raw)
	spec, err := LoadDeviceSpec(path)
	require.NoError(t, err)

	_, err = BuildDevice(spec)
	assert.Error(t, err)
}

func TestVariableSpecRawValuePreserved(t *testing.T) {
	var v variableSpec
	require.NoError(t, json.Unmarshal([]byte(`{"name": "x", "type": "F32", "value": 1.5}`), &v))

	f, err := buildField(v)
	require.NoError(t, err)

	ff, ok := f.(interface{ Value() float32 })
	require.True(t, ok, "expected a float-valued field")
	assert.Equal(t, float32(1.5), ff.Value())
}
