package job

import "fmt"

// job for the compositing worker: one frame, its mask and where the
// blended result goes
type Composite struct {
	FrameNum  int
	FramePath string
	MaskPath  string
	OutPath   string
}

func New(frameNum int, framePath, maskPath, outPath string) Composite {
	return Composite{
		FrameNum:  frameNum,
		FramePath: framePath,
		MaskPath:  maskPath,
		OutPath:   outPath,
	}
}

func (j *Composite) Print() string {
	return fmt.Sprintf("Job: FrameNum: %d, Frame: %s, Mask: %s", j.FrameNum, j.FramePath, j.MaskPath)
}
