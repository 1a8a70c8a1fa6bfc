package config

// Requested output serialization.
// ENUM(json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
