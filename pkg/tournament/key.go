package tournament

import "strings"

// KeySeparator joins network and tournament name into one identity string.
// Neither component may legitimately contain it; a network or name that does
// would collide, which is accepted as a known limitation rather than escaped.
const KeySeparator = "::"

// MakeKey builds the composite tournament identity used to group raw entries
// across import batches: "network::name".
func MakeKey(network, name string) string {
	return network + KeySeparator + name
}

// ParseKey splits an identity on the first separator occurrence. Keys without
// a separator (malformed or legacy) parse as an empty network with the whole
// key as the name.
func ParseKey(key string) (network, name string) {
	idx := strings.Index(key, KeySeparator)
	if idx == -1 {
		return "", key
	}
	return key[:idx], key[idx+len(KeySeparator):]
}

// NormalizeLegacyKey upgrades identity values found in older planner export
// files. Three shapes circulate: the current "network::name", the legacy
// "name||network" pair, and a bare tournament name. Bare names get the
// fallback network, normally "Manual".
func NormalizeLegacyKey(value, fallbackNetwork string) string {
	raw := strings.TrimSpace(value)
	if strings.Contains(raw, KeySeparator) {
		return raw
	}
	if strings.Contains(raw, "||") {
		parts := strings.SplitN(raw, "||", 2)
		name := strings.TrimSpace(parts[0])
		network := strings.TrimSpace(parts[1])
		if network == "" {
			network = fallbackNetwork
		}
		return MakeKey(network, name)
	}
	return MakeKey(fallbackNetwork, raw)
}
