package xcover

import "fmt"

// VerifyProblem checks that solution (a list of option indices) is a valid
// exact cover of an already-encoded Problem (component E): every primary
// item covered exactly once, every secondary item covered at most once,
// with color-consistent coverage where colors were supplied. It reports the
// first violation found, rather than collecting every violation.
func VerifyProblem(solution []int, p *Problem) error {
	nOpts := int(p.NumOptions())
	seen := make(map[int]bool, len(solution))
	primaryCount := make([]int32, p.NPrimary)
	secondaryCount := make([]int32, p.NSecondary)
	secondaryColor := make([]int32, p.NSecondary)

	for _, optIdx := range solution {
		if optIdx < 0 || optIdx >= nOpts {
			return &VerifyError{Reason: fmt.Sprintf("option %d out of range", optIdx)}
		}
		if seen[optIdx] {
			return &VerifyError{Reason: fmt.Sprintf("option %d selected more than once", optIdx)}
		}
		seen[optIdx] = true

		for n := p.OptionsPtr[optIdx]; n < p.OptionsPtr[optIdx+1]; n++ {
			item := p.NodeItem[n]
			col := p.NodeColor[n]

			if item < p.NPrimary {
				primaryCount[item]++
				continue
			}

			y := item - p.NPrimary
			switch {
			case col == 0:
				secondaryCount[y]++
			case secondaryColor[y] == 0:
				secondaryColor[y] = col
				secondaryCount[y]++
			case secondaryColor[y] != col:
				return &VerifyError{Item: p.ItemNames[item], Reason: "covered with conflicting colors"}
			}
		}
	}

	for i := int32(0); i < p.NPrimary; i++ {
		switch primaryCount[i] {
		case 1:
		case 0:
			return &VerifyError{Item: p.ItemNames[i], Reason: "not covered"}
		default:
			return &VerifyError{Item: p.ItemNames[i], Reason: "covered more than once"}
		}
	}
	for y := int32(0); y < p.NSecondary; y++ {
		if secondaryCount[y] > 1 {
			return &VerifyError{Item: p.ItemNames[p.NPrimary+y], Reason: "covered more than once"}
		}
	}
	return nil
}

// Verify encodes options (component A) and checks solution against the
// result (component E).
func Verify(solution []int, options [][]string, opts ...Option) error {
	p, err := Encode(options, opts...)
	if err != nil {
		return err
	}
	return VerifyProblem(solution, p)
}

// VerifyBool is Verify for a boolean incidence matrix.
func VerifyBool(solution []int, matrix [][]bool) error {
	p, err := EncodeBoolMatrix(matrix)
	if err != nil {
		return err
	}
	return VerifyProblem(solution, p)
}
