package compare_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pdelab/internal/analytic"
	"github.com/san-kum/pdelab/internal/compare"
	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/pde"
)

var _ = Describe("Compare", func() {
	var eq *pde.Equation

	BeforeEach(func() {
		eq = pde.DefaultHeat()
	})

	Context("when both results share a grid", func() {
		It("reports an exact self-comparison", func() {
			res, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())

			rep, err := compare.Compare(res, res)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.GridsMatched).To(BeTrue())
			Expect(rep.MaxError).To(BeZero())
			Expect(rep.MeanError).To(BeZero())
			Expect(rep.RMSE).To(BeZero())
		})

		It("skips interpolation for numerically equal grids", func() {
			a, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := fdm.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())

			rep, err := compare.Compare(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.GridsMatched).To(BeTrue())
			Expect(rep.CommonGrid).To(HaveLen(50))
			// Truncation error of the explicit scheme at r=0.49.
			Expect(rep.MaxError).To(BeNumerically("<", 0.05))
			Expect(rep.MaxError).To(BeNumerically(">", 0))
		})

		It("never mutates its inputs", func() {
			a, err := analytic.New().Solve(eq, 40, 40, 1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := fdm.New().Solve(eq, 40, 40, 1.0)
			Expect(err).NotTo(HaveOccurred())

			beforeA := a.Field.Clone()
			beforeB := b.Field.Clone()
			_, err = compare.Compare(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Field).To(Equal(beforeA))
			Expect(b.Field).To(Equal(beforeB))
		})
	})

	Context("when spatial resolutions differ", func() {
		It("reconciles onto a common grid of the finer width", func() {
			a, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := fdm.New().Solve(eq, 80, 200, 1.0)
			Expect(err).NotTo(HaveOccurred())

			rep, err := compare.Compare(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.GridsMatched).To(BeFalse())
			Expect(rep.CommonGrid).To(HaveLen(80))
			Expect(rep.PointwiseError).To(HaveLen(80))
			Expect(rep.CommonGrid[0]).To(Equal(0.0))
			Expect(rep.CommonGrid[79]).To(Equal(1.0))
		})

		It("keeps the reconciled error small for a stable pair", func() {
			a, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := fdm.New().Solve(eq, 80, 200, 1.0)
			Expect(err).NotTo(HaveOccurred())

			rep, err := compare.Compare(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.MaxError).To(BeNumerically("<", 0.05))
			Expect(rep.MeanError).To(BeNumerically("<=", rep.MaxError))
			Expect(rep.RMSE).To(BeNumerically("<=", rep.MaxError))
			Expect(rep.MeanError).To(BeNumerically("<=", rep.RMSE))
		})

		It("is symmetric in the error magnitudes", func() {
			a, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := fdm.New().Solve(eq, 80, 200, 1.0)
			Expect(err).NotTo(HaveOccurred())

			ab, err := compare.Compare(a, b)
			Expect(err).NotTo(HaveOccurred())
			ba, err := compare.Compare(b, a)
			Expect(err).NotTo(HaveOccurred())
			Expect(ab.MaxError).To(BeNumerically("~", ba.MaxError, 1e-12))
			Expect(ab.RMSE).To(BeNumerically("~", ba.RMSE, 1e-12))
		})
	})

	Context("when inputs are incomplete", func() {
		It("rejects a nil result", func() {
			res, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())

			_, err = compare.Compare(nil, res)
			Expect(err).To(MatchError(pde.ErrIncompleteData))
			_, err = compare.Compare(res, nil)
			Expect(err).To(MatchError(pde.ErrIncompleteData))
		})

		It("rejects an empty field", func() {
			res, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())

			hollow := &pde.SolveResult{Field: pde.Field{}, Grid: res.Grid, Equation: eq}
			_, err = compare.Compare(hollow, res)
			Expect(err).To(MatchError(pde.ErrIncompleteData))
		})

		It("rejects a field that disagrees with its grid", func() {
			res, err := analytic.New().Solve(eq, 50, 50, 1.0)
			Expect(err).NotTo(HaveOccurred())

			narrow := &pde.SolveResult{
				Field:    pde.NewField(50, 10),
				Grid:     res.Grid,
				Equation: eq,
			}
			_, err = compare.Compare(narrow, res)
			Expect(err).To(MatchError(pde.ErrIncompleteData))
		})
	})
})
