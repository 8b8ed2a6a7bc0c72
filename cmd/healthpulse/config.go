package main

import (
	"fmt"

	"github.com/fwojciec/healthpulse/yaml"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	data, err := yaml.Marshal(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
