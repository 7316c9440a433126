package main

import (
	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

const (
	fov             = 3.14 / 3
	pointSizeBase   = 20
	aVertexPosition = 0
)

type renderer struct {
	gl      *webgl.WebGL
	program webgl.Program

	projectionMatrixLocation webgl.Location
	modelViewMatrixLocation  webgl.Location

	posBuf        webgl.Buffer
	nPoints       int
	width, height int
}

func newRenderer(gl *webgl.WebGL) (*renderer, error) {
	vs, err := initVertexShader(gl, vsSource)
	if err != nil {
		return nil, err
	}
	fs, err := initFragmentShader(gl, fsSource)
	if err != nil {
		return nil, err
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		gl:                       gl,
		program:                  program,
		projectionMatrixLocation: gl.GetUniformLocation(program, "uProjectionMatrix"),
		modelViewMatrixLocation:  gl.GetUniformLocation(program, "uModelViewMatrix"),
		posBuf:                   gl.CreateBuffer(),
	}

	gl.UseProgram(program)
	gl.Uniform1f(gl.GetUniformLocation(program, "uPointSizeBase"), pointSizeBase)
	gl.EnableVertexAttribArray(aVertexPosition)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)
	return r, nil
}

// setPoints uploads packed xyz coordinates.
func (r *renderer) setPoints(buf []float32) {
	gl := r.gl
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(buf), gl.STATIC_DRAW)
	r.nPoints = len(buf) / 3
}

func (r *renderer) resize() {
	gl := r.gl
	width, height := gl.Canvas.ClientWidth(), gl.Canvas.ClientHeight()
	if (width == r.width && height == r.height) || height == 0 {
		return
	}
	r.width, r.height = width, height
	gl.Canvas.SetWidth(width)
	gl.Canvas.SetHeight(height)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projectionMatrixLocation, false, mat.Perspective(
		fov, float32(width)/float32(height), 0.1, 1000.0,
	))
	gl.Viewport(0, 0, width, height)
}

func (r *renderer) draw(view mat.Mat4) {
	gl := r.gl
	r.resize()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.nPoints == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.UniformMatrix4fv(r.modelViewMatrixLocation, false, view)
	gl.DrawArrays(gl.POINTS, 0, r.nPoints)
}
