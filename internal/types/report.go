package types

// Mismatch records one failed pairwise comparison: the dimension that
// drifted and both conflicting values verbatim. Hint, when non-empty,
// suggests which side is older; it is advisory only.
type Mismatch struct {
	Dimension MismatchDimension
	Left      string
	Right     string
	Hint      string
}

// CheckReport is the immutable outcome of one reconciliation run. It is
// computed once per invocation and never persisted. Fields for stages
// not reached before a halt are left at their zero values.
type CheckReport struct {
	CargoPin          RevisionPin
	CargoSchemaRev    string
	GoModuleVersion   string
	GoSchemaRev       string
	ContainerRevision string
	PackageRevision   string
	ServerSchemaPin   RevisionPin

	Consistent bool
	Mismatch   *Mismatch
}
