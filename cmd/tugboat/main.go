// Command tugboat extracts site data from survey workbooks and renders
// deployment manifests from it.
package main

import "github.com/cameronsjo/tugboat/internal/cmd"

func main() {
	cmd.Execute()
}
