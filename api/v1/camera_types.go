package v1

// ExposureState is the camera's exposure phase.
type ExposureState int32

const (
	ExposureIdle ExposureState = iota
	ExposureExposing
	ExposureReadout
)

var exposureStateNames = []string{"IDLE", "EXPOSING", "READOUT"}

func (s ExposureState) String() string               { return enumName(exposureStateNames, int32(s)) }
func (s ExposureState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *ExposureState) UnmarshalText(b []byte) error {
	return enumParse(exposureStateNames, b, (*int32)(s), "exposure state")
}

// ReadoutSpeed selects the CCD readout rate.
type ReadoutSpeed int32

const (
	ReadoutSlow ReadoutSpeed = iota
	ReadoutFast
)

var readoutSpeedNames = []string{"SLOW", "FAST"}

func (s ReadoutSpeed) String() string               { return enumName(readoutSpeedNames, int32(s)) }
func (s ReadoutSpeed) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *ReadoutSpeed) UnmarshalText(b []byte) error {
	return enumParse(readoutSpeedNames, b, (*int32)(s), "readout speed")
}

// Gain selects the CCD pre-amplifier gain.
type Gain int32

const (
	GainOne Gain = iota
	GainTwo
	GainThree
)

var gainNames = []string{"ONE", "TWO", "THREE"}

func (g Gain) String() string                { return enumName(gainNames, int32(g)) }
func (g Gain) MarshalText() ([]byte, error)  { return []byte(g.String()), nil }
func (g *Gain) UnmarshalText(b []byte) error { return enumParse(gainNames, b, (*int32)(g), "gain") }

// Window is an inclusive CCD readout region in unbinned pixels.
type Window struct {
	XStart int32 `json:"x_start"`
	YStart int32 `json:"y_start"`
	XEnd   int32 `json:"x_end"`
	YEnd   int32 `json:"y_end"`
}

// CameraState is a snapshot of the camera configuration and exposure progress.
// Lengths are in milliseconds.
type CameraState struct {
	XBin                    int32         `json:"xbin"`
	YBin                    int32         `json:"ybin"`
	UseWindow               bool          `json:"use_window"`
	Window                  Window        `json:"window"`
	ExposureLength          int32         `json:"exposure_length"`
	ElapsedExposureLength   int32         `json:"elapsed_exposure_length"`
	RemainingExposureLength int32         `json:"remaining_exposure_length"`
	ExposureState           ExposureState `json:"exposure_state"`
	ExposureCount           int32         `json:"exposure_count"`
	ExposureIndex           int32         `json:"exposure_index"`
	ExposureInProgress      bool          `json:"exposure_in_progress"`
	CCDTemperature          float64       `json:"ccd_temperature"`
	ReadoutSpeed            ReadoutSpeed  `json:"readout_speed"`
	Gain                    Gain          `json:"gain"`
}

// ImageData is the last frame read out, row-major.
type ImageData struct {
	XSize int32   `json:"x_size"`
	YSize int32   `json:"y_size"`
	Data  []int32 `json:"data"`
}

type SetBinningRequest struct {
	XBin int32 `json:"xbin"`
	YBin int32 `json:"ybin"`
}

type SetWindowRequest struct {
	Window Window `json:"window"`
}

type SetReadoutSpeedRequest struct {
	Speed ReadoutSpeed `json:"speed"`
}

type SetGainRequest struct {
	Gain Gain `json:"gain"`
}

type SetFitsHeadersRequest struct {
	Cards []FitsHeaderCard `json:"cards"`
}

type AddFitsHeaderRequest struct {
	Card FitsHeaderCard `json:"card"`
}

type StartExposeRequest struct {
	ExposureLength int32 `json:"exposure_length"`
	SaveImage      bool  `json:"save_image"`
}

type StartMultbiasRequest struct {
	ExposureCount int32 `json:"exposure_count"`
}

// StartMultrunRequest is used by multrun and multdark.
type StartMultrunRequest struct {
	ExposureCount  int32 `json:"exposure_count"`
	ExposureLength int32 `json:"exposure_length"`
}

type FilenameResponse struct {
	Filename string `json:"filename"`
}

type FilenamesResponse struct {
	Filenames []string `json:"filenames"`
}
