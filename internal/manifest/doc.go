// Package manifest renders deployment manifests from site data.
//
// Templates are Go text/templates with the sprig function map plus toYaml
// and include. Built-in templates ship with the binary under
// templates/<kind>/<name>.yaml.tmpl; a templates directory with the same
// layout overrides them by name.
//
// Two kinds exist:
//
//   - site: rendered from data extracted out of a survey workbook, written to
//     <output>/site/<region>/<name>.yaml
//   - pki: rendered by the PKI processor from a site definition file, written
//     to <output>/site/<region>/pki/<name>.yaml
package manifest
