package twoport

// ZParameters are the open-circuit impedance parameters of a two-port
// network: v1 = Z11*i1 + Z12*i2, v2 = Z21*i1 + Z22*i2.
type ZParameters struct {
	Z11, Z12, Z21, Z22 complex128
}

// YParameters are the short-circuit admittance parameters: i1 = Y11*v1
// + Y12*v2, i2 = Y21*v1 + Y22*v2.
type YParameters struct {
	Y11, Y12, Y21, Y22 complex128
}

// HParameters are the hybrid parameters: v1 = H11*i1 + H12*v2, i2 =
// H21*i1 + H22*v2.
type HParameters struct {
	H11, H12, H21, H22 complex128
}

// ABCDParameters are the chain (transmission) parameters: v1 = A*v2 -
// B*i2, i1 = C*v2 - D*i2. Two-ports in cascade multiply their ABCD
// matrices.
type ABCDParameters struct {
	A, B, C, D complex128
}

// ToY converts Z parameters to Y parameters.
func (z ZParameters) ToY() (YParameters, error) {
	det := z.Z11*z.Z22 - z.Z12*z.Z21
	if det == 0 {
		return YParameters{}, ErrSingular
	}

	return YParameters{
		Y11: z.Z22 / det,
		Y12: -z.Z12 / det,
		Y21: -z.Z21 / det,
		Y22: z.Z11 / det,
	}, nil
}

// ToZ converts Y parameters to Z parameters.
func (y YParameters) ToZ() (ZParameters, error) {
	det := y.Y11*y.Y22 - y.Y12*y.Y21
	if det == 0 {
		return ZParameters{}, ErrSingular
	}

	return ZParameters{
		Z11: y.Y22 / det,
		Z12: -y.Y12 / det,
		Z21: -y.Y21 / det,
		Z22: y.Y11 / det,
	}, nil
}

// ToH converts Z parameters to hybrid parameters.
func (z ZParameters) ToH() (HParameters, error) {
	if z.Z22 == 0 {
		return HParameters{}, ErrSingular
	}
	det := z.Z11*z.Z22 - z.Z12*z.Z21

	return HParameters{
		H11: det / z.Z22,
		H12: z.Z12 / z.Z22,
		H21: -z.Z21 / z.Z22,
		H22: 1 / z.Z22,
	}, nil
}

// ToZ converts hybrid parameters to Z parameters.
func (h HParameters) ToZ() (ZParameters, error) {
	if h.H22 == 0 {
		return ZParameters{}, ErrSingular
	}
	det := h.H11*h.H22 - h.H12*h.H21

	return ZParameters{
		Z11: det / h.H22,
		Z12: h.H12 / h.H22,
		Z21: -h.H21 / h.H22,
		Z22: 1 / h.H22,
	}, nil
}

// ToABCD converts Z parameters to chain parameters.
func (z ZParameters) ToABCD() (ABCDParameters, error) {
	if z.Z21 == 0 {
		return ABCDParameters{}, ErrSingular
	}
	det := z.Z11*z.Z22 - z.Z12*z.Z21

	return ABCDParameters{
		A: z.Z11 / z.Z21,
		B: det / z.Z21,
		C: 1 / z.Z21,
		D: z.Z22 / z.Z21,
	}, nil
}

// ToZ converts chain parameters to Z parameters.
func (abcd ABCDParameters) ToZ() (ZParameters, error) {
	if abcd.C == 0 {
		return ZParameters{}, ErrSingular
	}
	det := abcd.A*abcd.D - abcd.B*abcd.C

	return ZParameters{
		Z11: abcd.A / abcd.C,
		Z12: det / abcd.C,
		Z21: 1 / abcd.C,
		Z22: abcd.D / abcd.C,
	}, nil
}

// Cascade combines two chain-parameter networks connected so the output
// of the first feeds the input of the second, returning the chain
// parameters of the combined network.
func Cascade(first, second ABCDParameters) ABCDParameters {
	return ABCDParameters{
		A: first.A*second.A + first.B*second.C,
		B: first.A*second.B + first.B*second.D,
		C: first.C*second.A + first.D*second.C,
		D: first.C*second.B + first.D*second.D,
	}
}
