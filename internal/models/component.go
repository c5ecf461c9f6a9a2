package models

import (
	"fmt"
	"strings"
)

// Component identifies a benchmarked hardware subsystem.
type Component string

const (
	ComponentCPU     Component = "cpu"
	ComponentMemory  Component = "memory"
	ComponentDisk    Component = "disk"
	ComponentNetwork Component = "network"
)

// Components returns all components in canonical order. The order is
// stable so reports and rankings are deterministic.
func Components() []Component {
	return []Component{ComponentCPU, ComponentMemory, ComponentDisk, ComponentNetwork}
}

func (c Component) String() string {
	return string(c)
}

// ParseComponent converts a string flag or config key to a Component.
func ParseComponent(s string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return ComponentCPU, nil
	case "memory", "mem":
		return ComponentMemory, nil
	case "disk":
		return ComponentDisk, nil
	case "network", "net":
		return ComponentNetwork, nil
	default:
		return "", fmt.Errorf("invalid component %q: must be cpu, memory, disk, or network", s)
	}
}
