package report

// Role catalogs are read from storage and may grow, so both translations are
// total: unknown values pass through unchanged.

var roleLabels = map[string]string{
	"teamLider":      "Team Lider",
	"projektManager": "Projekt Manager",
	"pracownik":      "Pracownik",
	"prezes":         "Prezes",
}

var roleNames = func() map[string]string {
	names := make(map[string]string, len(roleLabels))
	for name, label := range roleLabels {
		names[label] = name
	}
	return names
}()

// RoleLabel translates a storage role name to its display label.
func RoleLabel(name string) string {
	if label, ok := roleLabels[name]; ok {
		return label
	}
	return name
}

// RoleName translates a display label back to the storage role name.
func RoleName(label string) string {
	if name, ok := roleNames[label]; ok {
		return name
	}
	return label
}
