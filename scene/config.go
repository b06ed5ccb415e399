package scene

import "time"

// Vec is a JSON triple used for points, vectors and colors.
type Vec [3]float64

// Op is one step of a transform chain. Steps are applied in list order,
// so the first entry acts on the object first. Rotations are in degrees.
type Op struct {
	Op   string    `json:"op"` // translate, scale, rotate_x, rotate_y, rotate_z, shear
	Args []float64 `json:"args"`
}

type CameraCfg struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	FOVDeg float64 `json:"fovDeg"`
	From   Vec     `json:"from"`
	To     Vec     `json:"to"`
	Up     *Vec    `json:"up,omitempty"` // defaults to +y
}

type LightCfg struct {
	Position  Vec `json:"position"`
	Intensity Vec `json:"intensity"`
}

// SunCfg places a light along the real Sun direction for an observer.
type SunCfg struct {
	Time      time.Time `json:"time"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Distance  float64   `json:"distance,omitempty"` // defaults to 100
	Intensity *Vec      `json:"intensity,omitempty"`
}

type PatternCfg struct {
	Type      string `json:"type"` // stripe, gradient, ring, checker, image
	A         Vec    `json:"a"`
	B         Vec    `json:"b"`
	Texture   string `json:"texture,omitempty"` // image patterns only
	Transform []Op   `json:"transform,omitempty"`
}

// MaterialCfg leaves unset coefficients at their defaults.
type MaterialCfg struct {
	Color     *Vec        `json:"color,omitempty"`
	Ambient   *float64    `json:"ambient,omitempty"`
	Diffuse   *float64    `json:"diffuse,omitempty"`
	Specular  *float64    `json:"specular,omitempty"`
	Shininess *float64    `json:"shininess,omitempty"`
	Pattern   *PatternCfg `json:"pattern,omitempty"`
}

type ShapeCfg struct {
	Type      string       `json:"type"` // sphere, plane
	Transform []Op         `json:"transform,omitempty"`
	Material  *MaterialCfg `json:"material,omitempty"`
}

type Config struct {
	Camera     CameraCfg  `json:"camera"`
	Background Vec        `json:"background"`
	Lights     []LightCfg `json:"lights"`
	Sun        *SunCfg    `json:"sun,omitempty"`
	Shapes     []ShapeCfg `json:"shapes"`
}
