// Package conformance loads and runs end-to-end scenario fixtures: a
// script plus its expected stdout, expressed as YAML so a scenario can be
// added without touching Go code. Modeled on the teacher's
// conformance/schema.go and conformance/loader.go (TestSuite/TestCase
// backed by gopkg.in/yaml.v3 and filepath.Walk), narrowed to the single
// assertion this interpreter needs: exact stdout match.
package conformance

// Scenario is one fixture: a script to run against a fresh default
// inventory, and the stdout it must produce exactly.
type Scenario struct {
	Name         string `yaml:"name"`
	Script       string `yaml:"script"`
	ExpectStdout string `yaml:"expect_stdout"`
}
