package i18n

// storefrontStrings holds the UI strings the storefront API hands out.
var storefrontStrings = map[string]entry{
	"nav.home":                {el: "Αρχική", en: "Home"},
	"nav.products":            {el: "Προϊόντα", en: "Products"},
	"nav.projects":            {el: "Έργα", en: "Projects"},
	"nav.about":               {el: "Σχετικά", en: "About"},
	"nav.contact":             {el: "Επικοινωνία", en: "Contact"},
	"nav.catalog":             {el: "Κατάλογος", en: "Catalog"},
	"nav.admin":               {el: "Διαχείριση", en: "Admin"},
	"nav.menu":                {el: "Μενού", en: "Menu"},
	"products.title":          {el: "Η Συλλογή μας", en: "Our Collection"},
	"products.subtitle":       {el: "Ανακαλύψτε την πλήρη γκάμα επίπλων μπάνιου μας", en: "Discover our complete range of bathroom furniture"},
	"products.search":         {el: "Αναζήτηση προϊόντων...", en: "Search products..."},
	"products.filters":        {el: "Φίλτρα", en: "Filters"},
	"products.sort":           {el: "Ταξινόμηση", en: "Sort"},
	"products.sort.newest":    {el: "Νεότερα", en: "Newest"},
	"products.sort.priceAsc":  {el: "Τιμή: Χαμηλή → Υψηλή", en: "Price: Low → High"},
	"products.sort.priceDesc": {el: "Τιμή: Υψηλή → Χαμηλή", en: "Price: High → Low"},
	"products.sort.nameAsc":   {el: "Όνομα: Α → Ω", en: "Name: A → Z"},
	"products.sort.name":      {el: "Όνομα", en: "Name"},
	"products.noResults":      {el: "Δεν βρέθηκαν προϊόντα", en: "No products found"},
	"products.clearFilters":   {el: "Καθαρισμός φίλτρων", en: "Clear filters"},
	"products.applyFilters":   {el: "Εφαρμογή Φίλτρων", en: "Apply Filters"},
	"products.activeFilters":  {el: "Ενεργά Φίλτρα", en: "Active Filters"},
	"products.filter":         {el: "Φίλτρα", en: "Filters"},
	"products.clearAll":       {el: "Καθαρισμός όλων", en: "Clear all"},
	"products.results":        {el: "προϊόντα", en: "products"},
	"filter.categories":       {el: "Κατηγορίες", en: "Categories"},
	"filter.color":            {el: "Χρώμα", en: "Color"},
	"filter.material":         {el: "Υλικό", en: "Material"},
	"filter.price":            {el: "Τιμή", en: "Price"},
	"filter.priceRange":       {el: "Εύρος Τιμής", en: "Price Range"},
	"filter.quickPrices":      {el: "Γρήγορη Επιλογή", en: "Quick Select"},
	"product.addToCart":       {el: "Προσθήκη στο Καλάθι", en: "Add to Cart"},
	"product.inStock":         {el: "Διαθέσιμο", en: "In Stock"},
	"product.outOfStock":      {el: "Μη Διαθέσιμο", en: "Out of Stock"},
	"product.dimensions":      {el: "Διαστάσεις", en: "Dimensions"},
	"product.materials":       {el: "Υλικά", en: "Materials"},
	"product.colors":          {el: "Χρώματα", en: "Colors"},
	"product.features":        {el: "Χαρακτηριστικά", en: "Features"},
	"product.shipping":        {el: "Αποστολή", en: "Shipping"},
	"product.related":         {el: "Σχετικά Προϊόντα", en: "Related Products"},
	"product.description":     {el: "Περιγραφή", en: "Description"},
	"product.selectDimension": {el: "Επιλέξτε διάσταση", en: "Select dimension"},
	"product.quantity":        {el: "Ποσότητα", en: "Quantity"},
	"product.freeShipping":    {el: "Δωρεάν αποστολή", en: "Free shipping"},
	"product.warranty":        {el: "Εγγύηση 2 ετών", en: "2 year warranty"},
	"product.returns":         {el: "Εύκολες επιστροφές", en: "Easy returns"},
	"product.shippingInfo":    {el: "Πληροφορίες Αποστολής", en: "Shipping Info"},
	"product.shippingText":    {el: "Δωρεάν αποστολή σε όλη την Ελλάδα για παραγγελίες άνω των 500€. Παράδοση εντός 5-10 εργάσιμων ημερών.", en: "Free shipping throughout Greece for orders over €500. Delivery within 5-10 business days."},
	"category.all":            {el: "Όλα", en: "All"},
	"category.vanities":       {el: "Έπιπλα Μπάνιου", en: "Bathroom Vanities"},
	"category.mirrors":        {el: "Καθρέπτες", en: "Mirrors"},
	"category.cabinets":       {el: "Ντουλάπια", en: "Cabinets"},
	"category.columns":        {el: "Κολώνες", en: "Columns"},
	"category.accessories":    {el: "Αξεσουάρ", en: "Accessories"},
	"category.sinks":          {el: "Νιπτήρες", en: "Sinks"},
	"category.price":          {el: "Τιμή", en: "Price"},
	"cart.title":              {el: "Καλάθι Αγορών", en: "Shopping Cart"},
	"cart.empty":              {el: "Το καλάθι σας είναι άδειο", en: "Your cart is empty"},
	"cart.emptyText":          {el: "Προσθέστε προϊόντα για να ξεκινήσετε", en: "Add products to get started"},
	"cart.continueShopping":   {el: "Συνέχεια Αγορών", en: "Continue Shopping"},
	"cart.subtotal":           {el: "Υποσύνολο", en: "Subtotal"},
	"cart.shipping":           {el: "Αποστολή", en: "Shipping"},
	"cart.shippingCalc":       {el: "Υπολογίζεται κατά την ολοκλήρωση", en: "Calculated at checkout"},
	"cart.total":              {el: "Σύνολο", en: "Total"},
	"cart.checkout":           {el: "Ολοκλήρωση Παραγγελίας", en: "Proceed to Checkout"},
	"cart.remove":             {el: "Αφαίρεση", en: "Remove"},
	"cart.added":              {el: "Προστέθηκε στο καλάθι", en: "Added to cart"},
	"general.loading":         {el: "Φόρτωση...", en: "Loading..."},
	"general.error":           {el: "Σφάλμα", en: "Error"},
	"general.success":         {el: "Επιτυχία", en: "Success"},
	"general.save":            {el: "Αποθήκευση", en: "Save"},
	"general.cancel":          {el: "Ακύρωση", en: "Cancel"},
	"general.close":           {el: "Κλείσιμο", en: "Close"},
	"general.from":            {el: "από", en: "from"},
	"general.founded":         {el: "Ιδρύθηκε", en: "Founded"},
}
