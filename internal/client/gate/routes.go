package gate

// Console pages the gate knows about.
const (
	HomePath      = "/"
	BotsPath      = "/bots"
	RulesPath     = "/rules"
	SchedulesPath = "/schedules"
	LogsPath      = "/logs"
	SettingsPath  = "/settings"
	LoginPath     = "/login"
	RegisterPath  = "/register"
)

var routes = map[string]Class{
	HomePath:      Protected,
	BotsPath:      Protected,
	RulesPath:     Protected,
	SchedulesPath: Protected,
	LogsPath:      Protected,
	SettingsPath:  Protected,
	LoginPath:     PublicOnly,
	RegisterPath:  PublicOnly,
}

// Classify maps a path to its class. The second return is false for paths
// outside the route table.
func Classify(path string) (Class, bool) {
	class, ok := routes[path]
	return class, ok
}
