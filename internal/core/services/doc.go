// Package services implements the driving port interfaces.
// Services contain the core logic and call out to driven ports
// (adapters) for anything they do not compute themselves.
package services
