package main

import "github.com/fwojciec/mensafeed/yaml"

// Run executes the default-config command.
func (c *DefaultConfigCmd) Run(deps *Dependencies) error {
	_, err := deps.Stdout.Write(yaml.DefaultConfig())
	return err
}
