// Package config manages user-level settings stored at
// ~/.kitty-bridge/config.yaml. It provides functions to load, read, and
// write configuration keys such as the default project root used when the
// bridge is invoked outside a Spec Kitty checkout.
package config
