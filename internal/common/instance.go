package common

import (
	"os"
	"strings"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InstanceEnv overrides the derived instance id, for consoles running in
// containers that share a machine id.
const InstanceEnv = "CONSOLE_INSTANCE_ID"

// InstanceID returns a stable id for this console. Audit events carry it so
// that several consoles sharing one database can be told apart. The machine
// id is hashed with app so the raw hardware id never leaves the host.
func InstanceID(app string) uuid.UUID {
	if override := strings.TrimSpace(os.Getenv(InstanceEnv)); len(override) > 0 {
		id, err := uuid.Parse(override)
		if err == nil {
			return id
		}
		logrus.WithError(err).Warnf("Ignoring invalid %s", InstanceEnv)
	}

	protected, err := machineid.ProtectedID(app)
	if err != nil {
		logrus.WithError(err).Debugln("No machine id, using a random instance id")
		return uuid.New()
	}

	return instanceIDFrom(protected)
}

func instanceIDFrom(protected string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(protected))
}
