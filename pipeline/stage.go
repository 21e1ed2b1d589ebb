package pipeline

type Stage string

const (
	StageWipe      Stage = "wipe"
	StagePartition Stage = "partition"
	StageFormat    Stage = "format"
	StageVerify    Stage = "verify"
)

// Stages lists the pipeline stages in execution order. No stage is skipped,
// none repeats.
var Stages = []Stage{StageWipe, StagePartition, StageFormat, StageVerify}

// StageResult records one attempted stage. A run's results are ordered and
// hold exactly one entry per attempted stage, so a failure at stage N leaves
// N entries.
type StageResult struct {
	Stage     Stage
	Succeeded bool
	Message   string
}
