package fridge

// Stage is the user-visible phase of a receipt upload job. Only the upload
// band reflects real transferred bytes; the recognize and extract bands are
// a client-side approximation, since the backend returns one final payload
// with no sub-progress.
type Stage string

const (
	StageUpload    Stage = "upload"
	StageRecognize Stage = "recognize"
	StageExtract   Stage = "extract"
	StageComplete  Stage = "complete"
)

// StageFor maps an overall progress percentage to its stage. Progress is
// expected in [0,100]: 0-32 upload, 33-65 recognize, 66-99 extract,
// 100 complete.
func StageFor(progress int) Stage {
	switch {
	case progress >= 100:
		return StageComplete
	case progress >= 66:
		return StageExtract
	case progress >= 33:
		return StageRecognize
	default:
		return StageUpload
	}
}
