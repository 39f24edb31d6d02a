package allowance

import (
	"fmt"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/allowance"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
)

type roomAssignment struct {
	symbol   string
	roommate int
}

// pairRooms assigns roommates greedily in input order. Employees are
// grouped by gender in order of first appearance and paired 0-1, 2-3 and so
// on inside each group. Top-level managers and employees already living at
// the destination are left out. Pair symbols cycle across all groups.
func pairRooms(employees []employee.Employee, destination string) map[int]roomAssignment {
	var genders []employee.Gender
	groups := make(map[employee.Gender][]int)
	for i, emp := range employees {
		if emp.VisitProvince == destination || emp.Level == TopLevelCode {
			continue
		}
		if _, ok := groups[emp.Gender]; !ok {
			genders = append(genders, emp.Gender)
		}
		groups[emp.Gender] = append(groups[emp.Gender], i)
	}

	assignments := make(map[int]roomAssignment)
	symbolIndex := 0
	for _, g := range genders {
		members := groups[g]
		for i := 0; i+1 < len(members); i += 2 {
			symbol := PairSymbols[symbolIndex%len(PairSymbols)]
			a, b := members[i], members[i+1]
			assignments[a] = roomAssignment{symbol: symbol, roommate: b}
			assignments[b] = roomAssignment{symbol: symbol, roommate: a}
			symbolIndex++
		}
	}
	return assignments
}

// CompanyTrip prices the annual trip for every employee. Everyone pays the
// round-trip bus fare. Employees whose visit province is the destination get
// no lodging; top-level managers and unpaired employees pay a full single
// room; paired employees pay half of their own level's hotel rate. Output
// order follows input order, and pairing depends on it.
func (c *Calculator) CompanyTrip(employees []employee.Employee, table rate.Table, destination string, busFare float64) []allowance.CompanyTripRecord {
	assignments := pairRooms(employees, destination)
	busFareTotal := busFare * 2

	records := make([]allowance.CompanyTripRecord, 0, len(employees))
	for i, emp := range employees {
		rates := c.ResolveRates(emp, table)
		record := allowance.CompanyTripRecord{
			EmployeeResponse:      snapshot(emp),
			Destination:           destination,
			AccommodationEligible: emp.VisitProvince != destination,
			RoomType:              allowance.RoomNone,
			HotelRate:             rates.Hotel,
			BusFare:               busFare,
			BusFareTotal:          busFareTotal,
			Note:                  noteNotEligible,
		}

		if record.AccommodationEligible {
			switch assignment, paired := assignments[i]; {
			case emp.Level == TopLevelCode:
				record.RoomType = allowance.RoomSingle
				record.AccommodationCost = rates.Hotel
				record.Note = noteSingleRoom
			case paired:
				record.RoomType = allowance.RoomShared
				record.PairTag = assignment.symbol
				record.RoommateID = employees[assignment.roommate].ID
				record.AccommodationCost = rates.Hotel / 2
				record.Note = fmt.Sprintf(notePairTemplate, assignment.symbol, emp.Gender)
			default:
				record.RoomType = allowance.RoomSingle
				record.AccommodationCost = rates.Hotel
				record.Note = noteNoPair
			}
		}

		record.Total = record.BusFareTotal + record.AccommodationCost
		records = append(records, record)
	}
	return records
}
