package earth

import (
	"math"
	"time"

	"github.com/echoflaresat/phong/vectors"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// SunDirectionECEF returns the unit vector from Earth's center toward the
// Sun in Earth-centered, Earth-fixed coordinates.
func SunDirectionECEF(t time.Time) vectors.Vec3 {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Step 1: Apparent RA/Dec of the Sun
	ra, dec := solar.ApparentEquatorial(jd)

	// Step 2: Unit vector in ECI (Earth-centered inertial)
	x := math.Cos(dec.Rad()) * math.Cos(ra.Rad())
	y := math.Cos(dec.Rad()) * math.Sin(ra.Rad())
	z := math.Sin(dec.Rad())

	// Step 3: Rotate ECI → ECEF using apparent sidereal time
	gst := sidereal.Apparent(jd).Rad()
	cosGST, sinGST := math.Cos(gst), math.Sin(gst)

	return vectors.Vec3{
		X: x*cosGST + y*sinGST,
		Y: -x*sinGST + y*cosGST,
		Z: z,
	}
}

// SunDirection returns the direction toward the Sun as seen by an observer
// at the given geodetic latitude/longitude (degrees), expressed in scene
// axes: +x east, +y up (zenith), -z north.
func SunDirection(t time.Time, latDeg, lonDeg float64) vectors.Vec3 {
	s := SunDirectionECEF(t)
	lat := unit.AngleFromDeg(latDeg)
	lon := unit.AngleFromDeg(lonDeg)
	sinLat, cosLat := lat.Sin(), lat.Cos()
	sinLon, cosLon := lon.Sin(), lon.Cos()

	east := -sinLon*s.X + cosLon*s.Y
	north := -sinLat*cosLon*s.X - sinLat*sinLon*s.Y + cosLat*s.Z
	up := cosLat*cosLon*s.X + cosLat*sinLon*s.Y + sinLat*s.Z

	return vectors.Vec3{X: east, Y: up, Z: -north}.Normalize()
}
