package util

import (
	"strconv"
	"strings"
)

const ethernetPrefix = "Ethernet"

// PortSortKey returns the numeric suffix of an Ethernet port name, used to
// order translation-table entries to match physical port order. Names
// without the Ethernet prefix (or with a non-numeric suffix) sort as 0.
func PortSortKey(port string) int {
	if !strings.HasPrefix(port, ethernetPrefix) {
		return 0
	}
	n, err := strconv.Atoi(port[len(ethernetPrefix):])
	if err != nil {
		return 0
	}
	return n
}

// IsEthernetPort reports whether the name is a front-panel Ethernet port
// with a numeric index.
func IsEthernetPort(port string) bool {
	if !strings.HasPrefix(port, ethernetPrefix) || len(port) == len(ethernetPrefix) {
		return false
	}
	_, err := strconv.Atoi(port[len(ethernetPrefix):])
	return err == nil
}

// NormalizePortName normalizes abbreviated port names to SONiC format
// (eth0 -> Ethernet0). Names already in long form or unknown are returned
// unchanged.
func NormalizePortName(name string) string {
	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)

	for _, abbr := range []string{"ethernet", "eth"} {
		if strings.HasPrefix(lower, abbr) && len(name) > len(abbr) {
			suffix := name[len(abbr):]
			if len(suffix) > 0 && suffix[0] >= '0' && suffix[0] <= '9' {
				return ethernetPrefix + suffix
			}
		}
	}

	return name
}
