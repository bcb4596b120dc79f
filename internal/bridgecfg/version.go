package bridgecfg

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// supportedSchemaMajor is the bridge.yaml schema generation this binary
// understands. Minor/patch revisions within the major are accepted.
const supportedSchemaMajor = 1

// checkSchemaVersion verifies a schema_version value is parseable and
// belongs to the supported major. An empty value means "current defaults"
// and is accepted.
func checkSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing schema_version %q: %w", version, err)
	}

	if v.Major() != supportedSchemaMajor {
		return fmt.Errorf("unsupported schema_version %s: this build supports %d.x", version, supportedSchemaMajor)
	}
	return nil
}
