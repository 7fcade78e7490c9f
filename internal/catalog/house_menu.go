package catalog

import (
	"strconv"

	"taste-heaven/internal/model"
)

// Menu categories, in the order the house menu lists them.
const (
	CategoryStarters   = "Starters"
	CategoryMainCourse = "Main Course"
	CategoryBreads     = "Breads"
	CategoryDrinks     = "Drinks"
	CategoryDesserts   = "Desserts"
)

var houseMenu = []model.Product{
	{Name: "Paneer Tikka", Price: 180, Category: CategoryStarters, Img: "Paneertikka.jpg"},
	{Name: "Crispy Corn", Price: 150, Category: CategoryStarters, Img: "Crispy Corn.jpg"},
	{Name: "Veg Manchurian", Price: 160, Category: CategoryStarters, Img: "Veg Manchurian.jpg"},
	{Name: "Chicken Lollipop", Price: 220, Category: CategoryStarters, Img: "Chicken Lollipop.jpg"},

	{Name: "Butter Chicken", Price: 280, Category: CategoryMainCourse, Img: "Butter Chicken.jpg"},
	{Name: "Paneer Butter Masala", Price: 240, Category: CategoryMainCourse, Img: "Butter Paneer Masala.png"},
	{Name: "Dal Tadka", Price: 160, Category: CategoryMainCourse, Img: "Dal Tadka.jpg"},
	{Name: "Veg Biryani", Price: 200, Category: CategoryMainCourse, Img: "vegbiryani.png"},
	{Name: "Chicken Biryani", Price: 250, Category: CategoryMainCourse, Img: "Chicken Biryani.jpg"},

	{Name: "Butter Naan", Price: 40, Category: CategoryBreads, Img: "Butter Naan.jpg"},
	{Name: "Garlic Naan", Price: 50, Category: CategoryBreads, Img: "Cheese Garlic Bread.png"},
	{Name: "Tandoori Roti", Price: 25, Category: CategoryBreads, Img: "Tandoori Roti.jpg"},

	{Name: "Sweet Lassi", Price: 90, Category: CategoryDrinks, Img: "Sweet Lassi.jpg"},
	{Name: "Cold Coffee", Price: 110, Category: CategoryDrinks, Img: "cold-drink-7074305_1280.jpg"},
	{Name: "Mango Shake", Price: 120, Category: CategoryDrinks, Img: "mangoshake.jpg"},
	{Name: "Fresh Lime Soda", Price: 80, Category: CategoryDrinks, Img: "FreshLime Soda.jpg"},

	{Name: "Gulab Jamun", Price: 100, Category: CategoryDesserts, Img: "Gulab Jamun.jpg"},
	{Name: "Rasgulla", Price: 100, Category: CategoryDesserts, Img: "Rasgulla.jpg"},
	{Name: "Brownie with Ice Cream", Price: 160, Category: CategoryDesserts, Img: "Chocolate Brownie.jpg"},
	{Name: "Chocolate Mousse", Price: 150, Category: CategoryDesserts, Img: "Chocolate Mousse.jpg"},
}

// HouseMenu returns the built-in menu. It seeds new stores and stands in for
// the catalog when the server cannot be reached. Dishes carry their 1-based
// position as ID so the client can address them without a server.
func HouseMenu() []model.Product {
	menu := make([]model.Product, len(houseMenu))
	for i, p := range houseMenu {
		p.ID = strconv.Itoa(i + 1)
		menu[i] = p
	}
	return menu
}
