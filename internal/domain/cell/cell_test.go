package cell_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/cell"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromRaw(t *testing.T) {
	Convey("Given raw cell text", t, func() {
		Convey("When the cell is blank or whitespace", func() {
			So(cell.FromRaw("").Kind(), ShouldEqual, cell.Empty)
			So(cell.FromRaw("   ").Kind(), ShouldEqual, cell.Empty)
			So(cell.FromRaw("  ").String(), ShouldEqual, "")
		})

		Convey("When the cell holds a number", func() {
			v := cell.FromRaw(" 42 ")
			So(v.Kind(), ShouldEqual, cell.Number)
			So(v.String(), ShouldEqual, "42")
		})

		Convey("Then a literal zero survives coercion", func() {
			v := cell.FromRaw("0")
			So(v.Kind(), ShouldEqual, cell.Number)
			So(v.IsEmpty(), ShouldBeFalse)
			So(v.String(), ShouldEqual, "0")
		})

		Convey("When the cell holds text", func() {
			v := cell.FromRaw("  Asha ")
			So(v.Kind(), ShouldEqual, cell.Text)
			So(v.String(), ShouldEqual, "Asha")
		})
	})
}

func TestGrade(t *testing.T) {
	Convey("Given grade cells in mixed encodings", t, func() {
		Convey("Then letters are uppercased and trimmed", func() {
			So(cell.Grade(cell.FromRaw(" a ")), ShouldEqual, "A")
			So(cell.Grade(cell.FromRaw("B")), ShouldEqual, "B")
		})

		Convey("Then the legacy numeric encoding maps to A", func() {
			So(cell.Grade(cell.FromRaw("1")), ShouldEqual, "A")
		})

		Convey("Then empty and residual values pass through", func() {
			So(cell.Grade(cell.Value{}), ShouldEqual, "")
			So(cell.Grade(cell.FromRaw("ab")), ShouldEqual, "AB")
		})
	})
}

func TestPlace(t *testing.T) {
	Convey("Given place cells in mixed encodings", t, func() {
		Convey("Then hyphenated fragments classify by prefix", func() {
			got, implied := cell.Place(cell.FromRaw("-FIRST"))
			So(got, ShouldEqual, cell.PlaceFirst)
			So(implied, ShouldBeFalse)

			got, _ = cell.Place(cell.FromRaw("-seco"))
			So(got, ShouldEqual, cell.PlaceSecond)

			got, _ = cell.Place(cell.FromRaw("-thi"))
			So(got, ShouldEqual, cell.PlaceThird)
		})

		Convey("Then ordinal suffixes are stripped from numeric forms", func() {
			got, _ := cell.Place(cell.FromRaw("1st"))
			So(got, ShouldEqual, cell.PlaceFirst)

			got, _ = cell.Place(cell.FromRaw("2ND"))
			So(got, ShouldEqual, cell.PlaceSecond)

			got, _ = cell.Place(cell.FromRaw("3rd"))
			So(got, ShouldEqual, cell.PlaceThird)
		})

		Convey("Then bare digits classify directly", func() {
			got, _ := cell.Place(cell.FromRaw("1"))
			So(got, ShouldEqual, cell.PlaceFirst)

			got, _ = cell.Place(cell.FromRaw("2"))
			So(got, ShouldEqual, cell.PlaceSecond)

			got, _ = cell.Place(cell.FromRaw("3"))
			So(got, ShouldEqual, cell.PlaceThird)
		})

		Convey("Then the Roman numeral convention implies grade A", func() {
			got, implied := cell.Place(cell.FromRaw("I"))
			So(got, ShouldEqual, cell.PlaceFirst)
			So(implied, ShouldBeTrue)
		})

		Convey("Then free-text placements pass through capitalized", func() {
			got, implied := cell.Place(cell.FromRaw("participation"))
			So(got, ShouldEqual, "Participation")
			So(implied, ShouldBeFalse)
		})

		Convey("Then a word ending in an ordinal suffix keeps it", func() {
			got, _ := cell.Place(cell.FromRaw("protest"))
			So(got, ShouldEqual, "Protest")
		})

		Convey("Then empty input yields empty output, no error", func() {
			got, implied := cell.Place(cell.Value{})
			So(got, ShouldEqual, "")
			So(implied, ShouldBeFalse)
		})
	})
}
