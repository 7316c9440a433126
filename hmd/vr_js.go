package hmd

import (
	"errors"
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

var ErrNoVRDisplay = errors.New("no VR display available")

// WebVR polls the first VRDisplay of navigator.getVRDisplays.
type WebVR struct {
	display   js.Value
	frameData js.Value
	pose      Pose
}

// NewWebVR resolves the available displays. It blocks until the browser
// answers, so it must not be called from a JS callback.
func NewWebVR() (*WebVR, error) {
	nav := js.Global().Get("navigator")
	if nav.Get("getVRDisplays").IsUndefined() || js.Global().Get("VRFrameData").IsUndefined() {
		return nil, ErrNoVRDisplay
	}
	chDisplay := make(chan js.Value, 1)
	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		displays := args[0]
		if displays.Get("length").Int() == 0 {
			chDisplay <- js.Null()
			return nil
		}
		chDisplay <- displays.Index(0)
		return nil
	})
	defer then.Release()
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chDisplay <- js.Null()
		return nil
	})
	defer catch.Release()
	nav.Call("getVRDisplays").Call("then", then, catch)

	display := <-chDisplay
	if display.IsNull() {
		return nil, ErrNoVRDisplay
	}
	return &WebVR{
		display:   display,
		frameData: js.Global().Get("VRFrameData").New(),
		pose:      IdentityPose(),
	}, nil
}

func (v *WebVR) Update() {
	if !v.display.Call("getFrameData", v.frameData).Truthy() {
		return
	}
	pose := v.frameData.Get("pose")
	if o := pose.Get("orientation"); o.Truthy() {
		v.pose.Orientation = mgl32.Quat{
			W: float32(o.Index(3).Float()),
			V: mgl32.Vec3{
				float32(o.Index(0).Float()),
				float32(o.Index(1).Float()),
				float32(o.Index(2).Float()),
			},
		}
	}
	if p := pose.Get("position"); p.Truthy() {
		v.pose.Position = mat.Vec3{
			float32(p.Index(0).Float()),
			float32(p.Index(1).Float()),
			float32(p.Index(2).Float()),
		}
	} else {
		v.pose.Position = mat.Vec3{}
	}
}

func (v *WebVR) Pose() Pose {
	return v.pose
}
