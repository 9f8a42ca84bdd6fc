package session

// Demo is a script that walks the address book through a typical
// lifecycle: two contacts, an edited phone, a phone lookup and a delete.
const Demo = `# Create John with two phones and Jane with one.
add John 1234567890 5555555555
add Jane 9876543210
all

# Edit John's first phone; it keeps its position.
edit-phone John 1234567890 1112223333
find John
find-phone John 5555555555

delete Jane
find Jane
`
