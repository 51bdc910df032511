// Package driving defines the driving (inbound) ports of the hexagon:
// interfaces exposed by core services to external actors such as the
// CLI, the MCP server and the TUI.
package driving
