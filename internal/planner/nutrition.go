package planner

import (
	"math"

	"github.com/pulsefit/coach-backend/internal/models"
)

// macroTargets holds the per-objective protein dose and fat share.
type macroTargets struct {
	ProteinPerKG float64
	FatPct       float64
}

var objectiveMacros = map[models.Objective]macroTargets{
	models.ObjectiveCutting:       {ProteinPerKG: 2.2, FatPct: 0.25},
	models.ObjectiveRecomposition: {ProteinPerKG: 2.0, FatPct: 0.30},
	models.ObjectiveMaintenance:   {ProteinPerKG: 1.8, FatPct: 0.30},
}

// mealSlot is one named slot with its share of the day's calories.
type mealSlot struct {
	Name  string
	Time  string
	Share float64
}

// Training days add a snack and shift the lunch/dinner split; rest days
// spread the same total over three meals.
var trainingSlots = []mealSlot{
	{Name: "breakfast", Time: "08:00", Share: 0.25},
	{Name: "lunch", Time: "13:00", Share: 0.35},
	{Name: "dinner", Time: "20:00", Share: 0.30},
	{Name: "snack", Time: "16:30", Share: 0.10},
}

var restSlots = []mealSlot{
	{Name: "breakfast", Time: "08:00", Share: 0.25},
	{Name: "lunch", Time: "13:00", Share: 0.40},
	{Name: "dinner", Time: "20:00", Share: 0.35},
}

// referenceFood is a food entry with nutrition values per 100g.
type referenceFood struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// foodTable is the static per-slot food reference. Values per 100g.
var foodTable = map[string][]referenceFood{
	"breakfast": {
		{Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9},
		{Name: "Eggs", Calories: 155, Protein: 13.0, Carbs: 1.1, Fat: 11.0},
		{Name: "Greek yogurt", Calories: 59, Protein: 10.0, Carbs: 3.6, Fat: 0.4},
		{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
	},
	"lunch": {
		{Name: "Chicken breast", Calories: 165, Protein: 31.0, Carbs: 0, Fat: 3.6},
		{Name: "White rice", Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3},
		{Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7.0, Fat: 0.4},
	},
	"dinner": {
		{Name: "Salmon", Calories: 208, Protein: 20.0, Carbs: 0, Fat: 13.0},
		{Name: "Sweet potato", Calories: 86, Protein: 1.6, Carbs: 20.0, Fat: 0.1},
		{Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
	},
	"snack": {
		{Name: "Almonds", Calories: 579, Protein: 21.2, Carbs: 21.6, Fat: 49.9},
		{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2},
		{Name: "Cottage cheese", Calories: 98, Protein: 11.1, Carbs: 3.4, Fat: 4.3},
	},
}

// maxFoodsPerMeal caps how many reference foods a meal lists.
const maxFoodsPerMeal = 3

// GenerateNutritionPlan splits totalCalories into macro targets and per-slot
// meals. Carbs absorb all rounding residue and are not clamped, so extreme
// inputs can drive them negative.
func GenerateNutritionPlan(profile *models.UserProfile, objective models.Objective, totalCalories int, dayType models.DayType) models.NutritionPlan {
	targets, ok := objectiveMacros[objective]
	if !ok {
		targets = objectiveMacros[models.ObjectiveMaintenance]
	}

	protein := int(math.Round(profile.WeightKG * targets.ProteinPerKG))
	fat := int(math.Round(float64(totalCalories) * targets.FatPct / 9))
	carbs := int(math.Round(float64(totalCalories-protein*4-fat*9) / 4))

	slots := restSlots
	if dayType == models.DayTraining {
		slots = trainingSlots
	}

	meals := make([]models.Meal, 0, len(slots))
	for _, slot := range slots {
		mealCalories := int(math.Round(float64(totalCalories) * slot.Share))
		meals = append(meals, models.Meal{
			Name:     slot.Name,
			Time:     slot.Time,
			Foods:    buildMealFoods(slot.Name, mealCalories),
			Calories: mealCalories,
			Macros: models.Macros{
				Protein: int(math.Round(float64(protein) * slot.Share)),
				Carbs:   int(math.Round(float64(carbs) * slot.Share)),
				Fat:     int(math.Round(float64(fat) * slot.Share)),
			},
		})
	}

	return models.NutritionPlan{
		TotalCalories: totalCalories,
		Macros:        models.Macros{Protein: protein, Carbs: carbs, Fat: fat},
		Meals:         meals,
	}
}

// buildMealFoods portions the slot's reference foods to cover mealCalories.
// The per-food budget divides by the full table length even though at most
// maxFoodsPerMeal entries are emitted, so a slot with a longer table only
// plates part of its budget. Known quirk, kept for parity with shipped plans.
func buildMealFoods(slotName string, mealCalories int) []models.Food {
	table := foodTable[slotName]
	if len(table) == 0 {
		return nil
	}

	perFood := float64(mealCalories) / float64(len(table))

	count := len(table)
	if count > maxFoodsPerMeal {
		count = maxFoodsPerMeal
	}

	foods := make([]models.Food, 0, count)
	for _, ref := range table[:count] {
		grams := perFood / ref.Calories * 100
		foods = append(foods, models.Food{
			Name:     ref.Name,
			Quantity: math.Round(grams),
			Unit:     "g",
			Calories: int(math.Round(perFood)),
			Macros: models.Macros{
				Protein: int(math.Round(ref.Protein * grams / 100)),
				Carbs:   int(math.Round(ref.Carbs * grams / 100)),
				Fat:     int(math.Round(ref.Fat * grams / 100)),
			},
		})
	}
	return foods
}
