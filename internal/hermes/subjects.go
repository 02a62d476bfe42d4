package hermes

const (
	StreamName   = "COBALT_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

// StreamSubjects are captured by the JetStream stream.
var StreamSubjects = []string{"cobalt.design.>", "cobalt.scope.>"}

func SubjectDesignCreated(designID string) string { return "cobalt.design." + designID + ".created" }
func SubjectDesignUpdated(designID string) string { return "cobalt.design." + designID + ".updated" }
func SubjectDesignDeleted(designID string) string { return "cobalt.design." + designID + ".deleted" }

// SubjectScopeComputed takes the aggregation stage ("initial" or "refined").
func SubjectScopeComputed(stage string) string { return "cobalt.scope." + stage + ".computed" }
