package treeset_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jsouthworth.net/go/assoc/treeset"
)

var _ = Describe("Set Tests", func() {
	It("Will create a new, empty set correctly", func() {
		s := treeset.NewOrdered[int]()
		Expect(s).ToNot(BeNil())
		Expect(s.Size()).To(Equal(0))
		Expect(s.IsEmpty()).To(BeTrue())
		Expect(s.Contains()).To(BeTrue())
		Expect(s.Values()).To(BeEmpty())
	})

	It("Will keep items in ascending order", func() {
		s := treeset.NewOrdered(5, 1, 4, 3)
		Expect(s.Values()).To(Equal([]int{1, 3, 4, 5}))
		s.Add(2)
		Expect(s.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
		s.Add(3)
		Expect(s.Size()).To(Equal(5))
	})

	It("Will add and remove items correctly", func() {
		s := treeset.NewOrdered[string]()
		s.Add("delta", "alfa")
		Expect(s.Size()).To(Equal(2))
		Expect(s.Contains("alfa", "delta")).To(BeTrue())
		s.Remove("alfa")
		Expect(s.Contains("alfa")).To(BeFalse())
		Expect(s.Size()).To(Equal(1))
		s.Remove("alfa")
		Expect(s.Size()).To(Equal(1))
	})

	It("Will report the minimum and maximum items", func() {
		s := treeset.NewOrdered[int]()
		_, ok := s.Min()
		Expect(ok).To(BeFalse())
		_, ok = s.Max()
		Expect(ok).To(BeFalse())
		s.Add(3, 1, 2)
		min, ok := s.Min()
		Expect(ok).To(BeTrue())
		Expect(min).To(Equal(1))
		max, ok := s.Max()
		Expect(ok).To(BeTrue())
		Expect(max).To(Equal(3))
	})

	It("Will order items with a custom comparison", func() {
		s := treeset.New(func(a, b string) int {
			return -strings.Compare(a, b)
		}, "a", "c", "b")
		Expect(s.Values()).To(Equal([]string{"c", "b", "a"}))
	})

	It("Will iterate in ascending and descending order", func() {
		s := treeset.NewOrdered(2, 1, 3)
		var up []int
		for item := range s.All() {
			up = append(up, item)
		}
		Expect(up).To(Equal([]int{1, 2, 3}))
		var down []int
		for item := range s.Backward() {
			down = append(down, item)
		}
		Expect(down).To(Equal([]int{3, 2, 1}))
	})

	It("Will compute unions, intersections and differences", func() {
		s := treeset.NewOrdered(1, 2, 3)
		o := treeset.NewOrdered(2, 3, 4)
		Expect(s.Union(o).Values()).To(Equal([]int{1, 2, 3, 4}))
		Expect(s.Intersection(o).Values()).To(Equal([]int{2, 3}))
		Expect(s.Difference(o).Values()).To(Equal([]int{1}))
		Expect(o.Difference(s).Values()).To(Equal([]int{4}))
		Expect(s.Values()).To(Equal([]int{1, 2, 3}))
		Expect(o.Values()).To(Equal([]int{2, 3, 4}))
	})

	It("Will clone into an independent set", func() {
		s := treeset.NewOrdered(1)
		c := s.Clone()
		c.Add(2)
		Expect(s.Contains(2)).To(BeFalse())
		Expect(c.Values()).To(Equal([]int{1, 2}))
	})

	It("Will clear and accept new items", func() {
		s := treeset.NewOrdered(1, 2, 3)
		s.Clear()
		Expect(s.IsEmpty()).To(BeTrue())
		s.Add(7)
		Expect(s.Values()).To(Equal([]int{7}))
	})

	It("Will round trip through JSON", func() {
		s := treeset.NewOrdered(3, 1, 2)
		data, err := s.ToJSON()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(Equal("[1,2,3]"))
		restored := treeset.NewOrdered[int]()
		Expect(restored.FromJSON(data)).To(Succeed())
		Expect(restored.Values()).To(Equal([]int{1, 2, 3}))
		Expect(restored.FromJSON([]byte("{"))).ToNot(Succeed())
	})
})
