// Package config loads the two on-disk JSON formats the simulator reads at
// startup: a process config naming the serial port, and one or more device
// specs describing a simulated field device's variables and device-specific
// commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hartsim/hartsim/pkg/device"
	"github.com/hartsim/hartsim/pkg/field"
)

// variableSpec is one entry of a device spec's "variables" array.
type variableSpec struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
	Size  *int            `json:"size,omitempty"`
}

// commandFieldRef is one entry of a dynamic command's "request"/"reply"
// array: a reference to a variable already declared in "variables".
type commandFieldRef struct {
	Name string `json:"name"`
}

// commandSpec is one entry of a device spec's "commands" array.
type commandSpec struct {
	Number  int               `json:"number"`
	Request []commandFieldRef `json:"request"`
	Reply   []commandFieldRef `json:"reply"`
}

// DeviceSpec is the decoded shape of a device spec JSON file.
type DeviceSpec struct {
	Variables []variableSpec `json:"variables"`
	Commands  []commandSpec  `json:"commands"`
}

const (
	defaultPackedAsciiSize = 8
	defaultAsciiSize       = 32
)

// requiredVariables are the names every device spec must declare; missing
// or mistyped entries fail construction.
var requiredVariables = []string{"polling_address", "response_code", "expanded_device_type", "device_id"}

// LoadDeviceSpec reads and decodes a device spec JSON file from path.
func LoadDeviceSpec(path string) (*DeviceSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device spec %s: %w", path, err)
	}
	var spec DeviceSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse device spec %s: %w", path, err)
	}
	return &spec, nil
}

// buildField constructs a field.Field of the named type from its JSON spec.
func buildField(v variableSpec) (field.Field, error) {
	switch v.Type {
	case "U8":
		f := field.U8(0)
		if err := decodeUintValue(v, f); err != nil {
			return nil, err
		}
		return f, nil
	case "U16":
		f := field.U16(0)
		if err := decodeUintValue(v, f); err != nil {
			return nil, err
		}
		return f, nil
	case "U24":
		f := field.U24(0)
		if err := decodeUintValue(v, f); err != nil {
			return nil, err
		}
		return f, nil
	case "U32":
		f := field.U32(0)
		if err := decodeUintValue(v, f); err != nil {
			return nil, err
		}
		return f, nil
	case "F32":
		var fv float64
		if len(v.Value) > 0 {
			if err := json.Unmarshal(v.Value, &fv); err != nil {
				return nil, fmt.Errorf("variable %q: %w", v.Name, err)
			}
		}
		return field.F32(float32(fv)), nil
	case "Ascii":
		size := defaultAsciiSize
		if v.Size != nil {
			size = *v.Size
		}
		text, err := decodeStringValue(v)
		if err != nil {
			return nil, err
		}
		return field.NewAscii(size, text), nil
	case "PackedAscii":
		size := defaultPackedAsciiSize
		if v.Size != nil {
			size = *v.Size
		}
		text, err := decodeStringValue(v)
		if err != nil {
			return nil, err
		}
		return field.NewPackedAscii(size, text), nil
	default:
		return nil, fmt.Errorf("variable %q: unknown type %q", v.Name, v.Type)
	}
}

func decodeUintValue(v variableSpec, f *field.Uint) error {
	if len(v.Value) == 0 {
		return nil
	}
	var iv uint32
	if err := json.Unmarshal(v.Value, &iv); err != nil {
		return fmt.Errorf("variable %q: %w", v.Name, err)
	}
	f.SetValue(iv)
	return nil
}

func decodeStringValue(v variableSpec) (string, error) {
	if len(v.Value) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err != nil {
		return "", fmt.Errorf("variable %q: %w", v.Name, err)
	}
	return s, nil
}

// BuildDevice decodes a DeviceSpec into a ready-to-run *device.Device:
// required identity fields are wired into the device's concrete fields,
// every declared variable is kept addressable by name in NamedVariables for
// dynamic commands to reference, and the declared commands are registered
// as DynamicCommands.
func BuildDevice(spec *DeviceSpec) (*device.Device, error) {
	dev := device.New()

	seen := map[string]field.Field{}
	for _, v := range spec.Variables {
		f, err := buildField(v)
		if err != nil {
			return nil, err
		}
		seen[v.Name] = f
		dev.NamedVariables[v.Name] = f
	}

	for _, name := range requiredVariables {
		if _, ok := seen[name]; !ok {
			return nil, fmt.Errorf("device spec missing required variable %q", name)
		}
	}

	pollingAddress, ok := seen["polling_address"].(*field.Uint)
	if !ok || pollingAddress.Size() != 1 {
		return nil, fmt.Errorf("device spec variable \"polling_address\" must be U8")
	}
	dev.PollingAddress = pollingAddress

	expandedType, ok := seen["expanded_device_type"].(*field.Uint)
	if !ok || expandedType.Size() != 2 {
		return nil, fmt.Errorf("device spec variable \"expanded_device_type\" must be U16")
	}
	dev.ExpandedDeviceType = expandedType

	deviceID, ok := seen["device_id"].(*field.Uint)
	if !ok || deviceID.Size() != 3 {
		return nil, fmt.Errorf("device spec variable \"device_id\" must be U24")
	}
	dev.DeviceID = deviceID
	dev.LongAddress = dev.UniqueAddress()

	if responseCode, ok := seen["response_code"].(*field.Uint); !ok || responseCode.Size() != 1 {
		return nil, fmt.Errorf("device spec variable \"response_code\" must be U8")
	}

	for i, c := range spec.Commands {
		dc := device.DynamicCommand{Number: c.Number}
		for _, ref := range c.Request {
			if _, ok := seen[ref.Name]; !ok {
				return nil, fmt.Errorf("command %d (index %d): request references undeclared variable %q", c.Number, i, ref.Name)
			}
			dc.Request = append(dc.Request, ref.Name)
		}
		for _, ref := range c.Reply {
			if _, ok := seen[ref.Name]; !ok {
				return nil, fmt.Errorf("command %d (index %d): reply references undeclared variable %q", c.Number, i, ref.Name)
			}
			dc.Reply = append(dc.Reply, ref.Name)
		}
		dev.DynamicCommands[c.Number] = dc
	}

	return dev, nil
}
