package catalog

import "github.com/lapuropizza/storefront/internal/models"

// Built-in menu of the Zurich store. Deployments with their own menu point
// menu_file at a JSON document in the same shape.

var defaultCategories = []models.CategoryInfo{
	{ID: "pizza", Name: "Pizza", NameEN: "Pizza"},
	{ID: "pasta", Name: "Pasta", NameEN: "Pasta"},
	{ID: "salat", Name: "Salate", NameEN: "Salads"},
	{ID: "schiacciatine", Name: "Schiacciatine", NameEN: "Schiacciatine"},
	{ID: "spezialitaeten", Name: "Spezialitäten", NameEN: "Specialties"},
	{ID: "snacks", Name: "Snacks", NameEN: "Snacks"},
	{ID: "drinks", Name: "Getränke", NameEN: "Drinks"},
	{ID: "desserts", Name: "Desserts", NameEN: "Desserts"},
	{ID: "mittagsmenu", Name: "Mittagsmenü", NameEN: "Lunch Menu"},
	{ID: "pide", Name: "Pide", NameEN: "Pide"},
}

var defaultToppings = []models.Topping{
	{ID: "extra-cheese", Name: "Extra Käse", NameEN: "Extra Cheese", Price: 2, Category: "cheese"},
	{ID: "mozzarella", Name: "Mozzarella", NameEN: "Mozzarella", Price: 2, Category: "cheese"},
	{ID: "gorgonzola", Name: "Gorgonzola", NameEN: "Gorgonzola", Price: 2.5, Category: "cheese"},
	{ID: "parmesan", Name: "Parmesan", NameEN: "Parmesan", Price: 2, Category: "cheese"},
	{ID: "ham", Name: "Schinken", NameEN: "Ham", Price: 2, Category: "meat"},
	{ID: "salami", Name: "Salami", NameEN: "Salami", Price: 2, Category: "meat"},
	{ID: "pepperoni", Name: "Pepperoni", NameEN: "Pepperoni", Price: 2, Category: "meat"},
	{ID: "bacon", Name: "Speck", NameEN: "Bacon", Price: 2.5, Category: "meat"},
	{ID: "chicken", Name: "Poulet", NameEN: "Chicken", Price: 3, Category: "meat"},
	{ID: "tuna", Name: "Thon", NameEN: "Tuna", Price: 2.5, Category: "meat"},
	{ID: "mushrooms", Name: "Champignons", NameEN: "Mushrooms", Price: 1.5, Category: "vegetable"},
	{ID: "onions", Name: "Zwiebeln", NameEN: "Onions", Price: 1, Category: "vegetable"},
	{ID: "peppers", Name: "Peperoni", NameEN: "Peppers", Price: 1.5, Category: "vegetable"},
	{ID: "olives", Name: "Oliven", NameEN: "Olives", Price: 1.5, Category: "vegetable"},
	{ID: "tomatoes", Name: "Tomaten", NameEN: "Tomatoes", Price: 1.5, Category: "vegetable"},
	{ID: "artichokes", Name: "Artischocken", NameEN: "Artichokes", Price: 2, Category: "vegetable"},
	{ID: "spinach", Name: "Spinat", NameEN: "Spinach", Price: 1.5, Category: "vegetable"},
	{ID: "rucola", Name: "Rucola", NameEN: "Arugula", Price: 1.5, Category: "vegetable"},
	{ID: "jalapenos", Name: "Jalapeños", NameEN: "Jalapeños", Price: 1.5, Category: "vegetable"},
	{ID: "garlic", Name: "Knoblauch", NameEN: "Garlic", Price: 1, Category: "vegetable"},
}

var defaultMenuItems = []models.MenuItem{
	// Pizzas
	{ID: "pizza-margherita", Name: "Pizza Margherita", Category: "pizza", Prices: models.PriceSet{Small: 16, Large: 36}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Oregano"}},
	{ID: "pizza-funghi", Name: "Pizza Funghi", Category: "pizza", Prices: models.PriceSet{Small: 18, Large: 38}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Champignons", "Oregano"}},
	{ID: "pizza-prosciutto", Name: "Pizza Prosciutto", Category: "pizza", Prices: models.PriceSet{Small: 18, Large: 38}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Schinken", "Oregano"}},
	{ID: "pizza-cipolla", Name: "Pizza Cipolla", Category: "pizza", Prices: models.PriceSet{Small: 18, Large: 38}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Zwiebeln", "Oregano"}},
	{ID: "pizza-hawaii", Name: "Pizza Hawaii", Category: "pizza", Prices: models.PriceSet{Small: 19, Large: 39}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Schinken", "Ananas"}},
	{ID: "pizza-diavolo", Name: "Pizza Diavolo", Category: "pizza", Prices: models.PriceSet{Small: 21, Large: 41}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Salami scharf", "Peperoni", "Oregano"}},
	{ID: "pizza-quattro-formaggi", Name: "Pizza Quattro Formaggi", Category: "pizza", Prices: models.PriceSet{Small: 21, Large: 41}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Gorgonzola", "Parmesan", "Ricotta"}},
	{ID: "pizza-capricciosa", Name: "Pizza Capricciosa", Category: "pizza", Prices: models.PriceSet{Small: 21, Large: 41}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Schinken", "Champignons", "Artischocken", "Oliven"}},
	{ID: "pizza-frutti-di-mare", Name: "Pizza Frutti di Mare", Category: "pizza", Prices: models.PriceSet{Small: 21, Large: 41}, Customizable: true, Ingredients: []string{"Tomaten", "Mozzarella", "Meeresfrüchte"}},
	{ID: "pizza-bufala", Name: "Pizza Bufala", Category: "pizza", Prices: models.PriceSet{Small: 22, Large: 43}, Customizable: true, Ingredients: []string{"Tomaten", "Büffelmozzarella", "Basilikum", "Oregano"}},
	{ID: "pizza-build-own", Name: "Eigene Pizza", NameEN: "Build Your Own", Category: "pizza", Prices: models.PriceSet{Small: 14, Large: 32}, Customizable: true, Description: "Starte mit Teig und Tomatensauce, füge deine Lieblingszutaten hinzu", DescriptionEN: "Start with dough and tomato sauce, add your favorite toppings", Ingredients: []string{"Teig", "Tomatensauce"}},

	// Pasta
	{ID: "pasta-napoli", Name: "Pasta Napoli", Category: "pasta", Prices: models.PriceSet{Regular: 18}, Ingredients: []string{"Tomatensauce", "Basilikum"}},
	{ID: "pasta-arrabiata", Name: "Pasta all'Arrabbiata", Category: "pasta", Prices: models.PriceSet{Regular: 19}, Ingredients: []string{"Tomatensauce", "Chili", "Knoblauch"}},
	{ID: "pasta-carbonara", Name: "Pasta Carbonara", Category: "pasta", Prices: models.PriceSet{Regular: 20}, Ingredients: []string{"Rahmsauce", "Speck", "Ei", "Parmesan"}},
	{ID: "pasta-pesto", Name: "Pasta Pesto", Category: "pasta", Prices: models.PriceSet{Regular: 19}, Ingredients: []string{"Basilikumpesto", "Parmesan"}},
	{ID: "pasta-bolognese", Name: "Lasagne Bolognese", Category: "pasta", Prices: models.PriceSet{Regular: 19}, Ingredients: []string{"Hackfleisch", "Tomatensauce", "Béchamel"}},

	// Salate
	{ID: "salat-gruen", Name: "Grüner Salat", NameEN: "Green Salad", Category: "salat", Prices: models.PriceSet{Regular: 6}},
	{ID: "salat-gemischt", Name: "Gemischter Salat", NameEN: "Mixed Salad", Category: "salat", Prices: models.PriceSet{Regular: 8}},
	{ID: "salat-griechisch", Name: "Griechischer Salat", NameEN: "Greek Salad", Category: "salat", Prices: models.PriceSet{Regular: 15}, Ingredients: []string{"Feta", "Oliven", "Tomaten", "Gurken"}},
	{ID: "salat-caprese", Name: "Caprese", Category: "salat", Prices: models.PriceSet{Regular: 10}, Ingredients: []string{"Mozzarella", "Tomaten", "Basilikum"}},
	{ID: "salat-cobb", Name: "Cobb Salat", NameEN: "Cobb Salad", Category: "salat", Prices: models.PriceSet{Regular: 15}},

	// Schiacciatine
	{ID: "schiacciatine-caprese", Name: "Schiacciatine Caprese", Category: "schiacciatine", Prices: models.PriceSet{Regular: 14}},
	{ID: "schiacciatine-rustica", Name: "Schiacciatine Rustica", Category: "schiacciatine", Prices: models.PriceSet{Regular: 14}},
	{ID: "schiacciatine-diavola", Name: "Schiacciatine Diavola", Category: "schiacciatine", Prices: models.PriceSet{Regular: 14}},
	{ID: "schiacciatine-prosciutto", Name: "Schiacciatine Prosciutto", Category: "schiacciatine", Prices: models.PriceSet{Regular: 14}},

	// Spezialitäten
	{ID: "spez-poulet", Name: "Pouletflügeli (7 Stück)", NameEN: "Chicken Wings (7 pcs)", Category: "spezialitaeten", Prices: models.PriceSet{Regular: 19}},
	{ID: "spez-nuggets", Name: "Chicken Nuggets (10 Stück)", NameEN: "Chicken Nuggets (10 pcs)", Category: "spezialitaeten", Prices: models.PriceSet{Regular: 19}},
	{ID: "spez-cordon-bleu", Name: "Hausgemachter Cordon Bleu", NameEN: "Homemade Cordon Bleu", Category: "spezialitaeten", Prices: models.PriceSet{Regular: 18}, Description: "Schweinefleisch (300g)"},

	// Snacks
	{ID: "snack-pommes", Name: "Pommes Frites", NameEN: "French Fries", Category: "snacks", Prices: models.PriceSet{Regular: 9}},
	{ID: "snack-potatoes", Name: "Potatoes", Category: "snacks", Prices: models.PriceSet{Regular: 9}},

	// Getränke
	{ID: "drink-cola", Name: "Coca-Cola (5dl)", Category: "drinks", Prices: models.PriceSet{Regular: 4.5}},
	{ID: "drink-mineral", Name: "Mineralwasser (5dl)", NameEN: "Mineral Water (5dl)", Category: "drinks", Prices: models.PriceSet{Regular: 4}},
	{ID: "drink-icetea", Name: "Eistee (5dl)", NameEN: "Ice Tea (5dl)", Category: "drinks", Prices: models.PriceSet{Regular: 4.5}},

	// Desserts
	{ID: "dessert-tiramisu", Name: "Tiramisù", Category: "desserts", Prices: models.PriceSet{Regular: 9}},
	{ID: "dessert-panna-cotta", Name: "Panna Cotta", Category: "desserts", Prices: models.PriceSet{Regular: 8}},

	// Pide
	{ID: "pide-kaese", Name: "Pide Käse", NameEN: "Cheese Pide", Category: "pide", Prices: models.PriceSet{Regular: 17}},
	{ID: "pide-spinat", Name: "Pide Spinat", NameEN: "Spinach Pide", Category: "pide", Prices: models.PriceSet{Regular: 18}},
}
